package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Union_acceptsEitherLanguage(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	b := twoStateChain(alphabet, 1)

	u := Union(a, b)
	assert.True(t, u.IsInLang([]Symbol{0}))
	assert.True(t, u.IsInLang([]Symbol{1}))
	assert.False(t, u.IsInLang([]Symbol{0, 1}))
}

func Test_Intersection_ofDisjointLanguagesIsEmpty(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	b := twoStateChain(alphabet, 1)

	prod := Intersection(a, b, ProductOpts{})
	assert.True(t, IsLangEmpty(prod, nil))
}

func Test_Intersection_withSigmaStarIsIdentity(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	sigma := SigmaStar(alphabet)

	prod := Intersection(a, sigma, ProductOpts{})
	assert.True(t, prod.IsInLang([]Symbol{0}))
	assert.False(t, prod.IsInLang([]Symbol{1}))
}

func Test_Concat_acceptsConcatenatedWords(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	b := twoStateChain(alphabet, 1)

	c := Concat(a, b, ConcatOpts{UseEpsilon: true})
	assert.True(t, c.IsInLang([]Symbol{0, 1}))
	assert.False(t, c.IsInLang([]Symbol{0}))
	assert.False(t, c.IsInLang([]Symbol{1}))
}

func Test_Concat_withoutEpsilonIsEpsilonFree(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	b := twoStateChain(alphabet, 1)

	c := Concat(a, b, ConcatOpts{UseEpsilon: false})
	c.Delta.ForEachTransition(func(_ State, sym Symbol, _ State) {
		assert.NotEqual(t, Epsilon, sym)
	})
	assert.True(t, c.IsInLang([]Symbol{0, 1}))
}

func Test_Concat_withEmptyStringIsIdentity(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	empty := EmptyStringNfa(alphabet)

	c := Concat(a, empty, ConcatOpts{UseEpsilon: true})
	assert.True(t, c.IsInLang([]Symbol{0}))
	assert.False(t, c.IsInLang([]Symbol{0, 0}))
}

func Test_Reverse_flipsAcceptedWords(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := New(alphabet)
	s0 := a.AddState()
	s1 := a.AddState()
	s2 := a.AddState()
	a.SetInitial(s0)
	a.SetFinal(s2)
	a.AddTransition(s0, 0, s1)
	a.AddTransition(s1, 1, s2)

	r := Reverse(a)
	assert.True(t, r.IsInLang([]Symbol{1, 0}))
	assert.False(t, r.IsInLang([]Symbol{0, 1}))
}

func Test_RemoveEpsilon_preservesLanguage(t *testing.T) {
	alphabet := NewIntAlphabet(1)
	a := New(alphabet)
	s0 := a.AddState()
	s1 := a.AddState()
	s2 := a.AddState()
	a.SetInitial(s0)
	a.SetFinal(s2)
	a.AddTransition(s0, Epsilon, s1)
	a.AddTransition(s1, 0, s2)

	out := RemoveEpsilon(a)
	out.Delta.ForEachTransition(func(_ State, sym Symbol, _ State) {
		assert.NotEqual(t, Epsilon, sym)
	})
	assert.True(t, out.IsInLang([]Symbol{0}))
}
