package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Delta_AddAndContains(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, 1, 2)

	assert.True(t, d.Contains(0, 1, 2))
	assert.False(t, d.Contains(0, 1, 1))
	assert.False(t, d.Contains(1, 1, 2))
}

func Test_Delta_AddIsIdempotent(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, 1, 2)
	d.Add(0, 1, 2)

	post := d.StatePost(0)
	assert.Len(t, post, 1)
	assert.Equal(t, 1, post[0].Targets.Len())
}

func Test_Delta_AddKeepsSymbolPostsSorted(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, 5, 1)
	d.Add(0, 1, 1)
	d.Add(0, 3, 1)

	post := d.StatePost(0)
	var syms []Symbol
	for _, sp := range post {
		syms = append(syms, sp.Symbol)
	}
	assert.Equal(t, []Symbol{1, 3, 5}, syms)
}

func Test_Delta_EpsilonSortsLast(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, Epsilon, 1)
	d.Add(0, 0, 1)
	d.Add(0, 9, 1)

	post := d.StatePost(0)
	assert.Equal(t, Epsilon, post[len(post)-1].Symbol)
}

func Test_Delta_Remove(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, 1, 2)
	d.Add(0, 1, 0)
	d.Remove(0, 1, 2)

	assert.False(t, d.Contains(0, 1, 2))
	assert.True(t, d.Contains(0, 1, 0))

	d.Remove(0, 1, 0)
	assert.Empty(t, d.StatePost(0))
}

func Test_Delta_RemoveAbsentIsNoop(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, 1, 2)
	d.Remove(0, 9, 2)
	assert.True(t, d.Contains(0, 1, 2))
}

func Test_Delta_GrowsOnOutOfRangeAdd(t *testing.T) {
	d := NewDelta(1)
	d.Add(0, 1, 5)
	assert.GreaterOrEqual(t, d.Capacity(), uint32(6))
	assert.True(t, d.Contains(0, 1, 5))
}

func Test_Delta_ForEachTransition(t *testing.T) {
	d := NewDelta(3)
	d.Add(0, 1, 2)
	d.Add(1, 2, 0)

	type triple struct {
		src State
		sym Symbol
		tgt State
	}
	var got []triple
	d.ForEachTransition(func(src State, sym Symbol, tgt State) {
		got = append(got, triple{src, sym, tgt})
	})

	assert.ElementsMatch(t, []triple{{0, 1, 2}, {1, 2, 0}}, got)
}

func Test_Delta_Transform(t *testing.T) {
	d := NewDelta(2)
	d.Add(0, 1, 1)

	out := d.Transform(func(s State) State { return s + 10 }, true)
	assert.True(t, out.Contains(0, 1, 11))
	assert.False(t, out.Contains(0, 1, 1))
}

func Test_Delta_Append(t *testing.T) {
	a := NewDelta(2)
	a.Add(0, 1, 1)

	b := NewDelta(2)
	b.Add(0, 2, 1)

	a.Append(b)
	assert.True(t, a.Contains(0, 1, 1))
	// Append only reindexes by source state; it does not shift targets
	// itself (callers Transform first, as Union/Concat do).
	assert.True(t, a.Contains(2, 2, 1))
}

func Test_Delta_Copy_isIndependent(t *testing.T) {
	a := NewDelta(2)
	a.Add(0, 1, 1)

	cp := a.Copy()
	cp.Add(0, 2, 1)

	assert.False(t, a.Contains(0, 2, 1))
	assert.True(t, cp.Contains(0, 2, 1))
}
