package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OrdUint32Set_AddSortsAndDedups(t *testing.T) {
	s := NewOrdUint32Set()
	s.Add(5)
	s.Add(1)
	s.Add(3)
	s.Add(1)

	assert.Equal(t, []uint32{1, 3, 5}, s.Elements())
	assert.Equal(t, 3, s.Len())
}

func Test_OrdUint32Set_NewFromElems(t *testing.T) {
	s := NewOrdUint32Set(4, 2, 2, 8)
	assert.Equal(t, []uint32{2, 4, 8}, s.Elements())
}

func Test_OrdUint32Set_Remove(t *testing.T) {
	s := NewOrdUint32Set(1, 2, 3)
	s.Remove(2)
	assert.Equal(t, []uint32{1, 3}, s.Elements())

	// removing an absent element is a no-op
	s.Remove(99)
	assert.Equal(t, []uint32{1, 3}, s.Elements())
}

func Test_OrdUint32Set_Has(t *testing.T) {
	s := NewOrdUint32Set(1, 2, 3)
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(4))
}

func Test_OrdUint32Set_Empty(t *testing.T) {
	s := NewOrdUint32Set()
	assert.True(t, s.Empty())

	s.Add(1)
	assert.False(t, s.Empty())
}

func Test_OrdUint32Set_Union(t *testing.T) {
	a := NewOrdUint32Set(1, 2)
	b := NewOrdUint32Set(2, 3)
	assert.Equal(t, []uint32{1, 2, 3}, a.Union(b).Elements())

	// originals untouched
	assert.Equal(t, []uint32{1, 2}, a.Elements())
}

func Test_OrdUint32Set_Intersection(t *testing.T) {
	a := NewOrdUint32Set(1, 2, 3)
	b := NewOrdUint32Set(2, 3, 4)
	assert.Equal(t, []uint32{2, 3}, a.Intersection(b).Elements())
}

func Test_OrdUint32Set_Difference(t *testing.T) {
	a := NewOrdUint32Set(1, 2, 3)
	b := NewOrdUint32Set(2, 3, 4)
	assert.Equal(t, []uint32{1}, a.Difference(b).Elements())
}

func Test_OrdUint32Set_DisjointWith(t *testing.T) {
	a := NewOrdUint32Set(1, 2)
	b := NewOrdUint32Set(3, 4)
	c := NewOrdUint32Set(2, 5)

	assert.True(t, a.DisjointWith(b))
	assert.False(t, a.DisjointWith(c))
}

func Test_OrdUint32Set_Equal(t *testing.T) {
	a := NewOrdUint32Set(1, 2, 3)
	b := NewOrdUint32Set(3, 2, 1)
	c := NewOrdUint32Set(1, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func Test_OrdUint32Set_Copy_isIndependent(t *testing.T) {
	a := NewOrdUint32Set(1, 2, 3)
	cp := a.Copy()
	cp.Add(99)

	assert.False(t, a.Has(99))
	assert.True(t, cp.Has(99))
}

func Test_OrdUint32Set_String(t *testing.T) {
	s := NewOrdUint32Set(3, 1, 2)
	assert.Equal(t, "{1, 2, 3}", s.String())
}

func Test_OrdUint32Set_nilReceiver(t *testing.T) {
	var s *OrdUint32Set
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Empty())
	assert.Nil(t, s.Elements())
}
