package automaton

import (
	"testing"

	"github.com/dekarrin/gomata/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IntAlphabet_TranslateRoundTrip(t *testing.T) {
	a := NewIntAlphabet(4)

	sym, err := a.TranslateName("2")
	require.NoError(t, err)
	assert.Equal(t, Symbol(2), sym)

	name, err := a.ReverseTranslateSymbol(2)
	require.NoError(t, err)
	assert.Equal(t, "2", name)
}

func Test_IntAlphabet_OutOfRangeRejected(t *testing.T) {
	a := NewIntAlphabet(2)

	_, err := a.TranslateName("5")
	assert.Error(t, err)

	_, err = a.ReverseTranslateSymbol(5)
	assert.Error(t, err)
}

func Test_IntAlphabet_EnumerateSymbols(t *testing.T) {
	a := NewIntAlphabet(3)
	assert.Equal(t, []Symbol{0, 1, 2}, a.EnumerateSymbols())
}

func Test_IntAlphabet_ComplementOfSymbolSet(t *testing.T) {
	a := NewIntAlphabet(4)
	syms := util.NewOrdUint32Set(1, 2)
	assert.Equal(t, []Symbol{0, 3}, a.ComplementOfSymbolSet(syms))
}

func Test_NamedAlphabet_TranslateGrowsOnInsert(t *testing.T) {
	a := NewNamedAlphabet()

	sym1, err := a.TranslateName("foo")
	require.NoError(t, err)
	sym2, err := a.TranslateName("bar")
	require.NoError(t, err)
	sym1Again, err := a.TranslateName("foo")
	require.NoError(t, err)

	assert.NotEqual(t, sym1, sym2)
	assert.Equal(t, sym1, sym1Again)
}

func Test_NamedAlphabet_ReverseTranslate(t *testing.T) {
	a := NewNamedAlphabet()
	sym, err := a.TranslateName("foo")
	require.NoError(t, err)

	name, err := a.ReverseTranslateSymbol(sym)
	require.NoError(t, err)
	assert.Equal(t, "foo", name)

	_, err = a.ReverseTranslateSymbol(999)
	assert.Error(t, err)
}

func Test_NamedAlphabet_Declare(t *testing.T) {
	a := NewNamedAlphabet()
	require.NoError(t, a.Declare("foo", 5))

	sym, err := a.TranslateName("foo")
	require.NoError(t, err)
	assert.Equal(t, Symbol(5), sym)

	// declaring the same mapping again is a no-op
	assert.NoError(t, a.Declare("foo", 5))

	// colliding name
	assert.Error(t, a.Declare("foo", 6))
	// colliding symbol
	assert.Error(t, a.Declare("bar", 5))
}

func Test_NamedAlphabet_EnumerateSymbols_sortedByName(t *testing.T) {
	a := NewNamedAlphabet()
	bSym, _ := a.TranslateName("bravo")
	aSym, _ := a.TranslateName("alpha")
	cSym, _ := a.TranslateName("charlie")

	assert.Equal(t, []Symbol{aSym, bSym, cSym}, a.EnumerateSymbols())
}

func Test_NamedAlphabet_ComplementOfSymbolSet(t *testing.T) {
	a := NewNamedAlphabet()
	s1, _ := a.TranslateName("a")
	s2, _ := a.TranslateName("b")
	s3, _ := a.TranslateName("c")

	syms := util.NewOrdUint32Set(s2)
	comp := a.ComplementOfSymbolSet(syms)
	assert.ElementsMatch(t, []Symbol{s1, s3}, comp)
}

func Test_NamedAlphabet_NextUnusedSymbol(t *testing.T) {
	a := NewNamedAlphabet()
	assert.Equal(t, Symbol(0), a.NextUnusedSymbol())
	a.TranslateName("foo")
	assert.Equal(t, Symbol(1), a.NextUnusedSymbol())
}
