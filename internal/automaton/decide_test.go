package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IsLangEmpty_trueForNoFinalReachable(t *testing.T) {
	alphabet := NewIntAlphabet(1)
	a := New(alphabet)
	s0 := a.AddState()
	a.SetInitial(s0)

	assert.True(t, IsLangEmpty(a, nil))
}

func Test_IsLangEmpty_falseAndWitness(t *testing.T) {
	a := twoStateChain(NewIntAlphabet(2), 0)

	var w Witness
	empty := IsLangEmpty(a, &w)
	require.False(t, empty)
	assert.Equal(t, []Symbol{0}, w.Symbols)
}

func Test_IsLangEmpty_emptyWordAccepted(t *testing.T) {
	alphabet := NewIntAlphabet(1)
	a := New(alphabet)
	s0 := a.AddState()
	a.SetInitial(s0)
	a.SetFinal(s0)

	var w Witness
	assert.False(t, IsLangEmpty(a, &w))
	assert.Empty(t, w.Symbols)
}

func Test_IsUniversal_sigmaStarIsUniversal(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	sigma := SigmaStar(alphabet)

	universal, err := IsUniversal(sigma, alphabet, Params{"algorithm": string(AlgoAntichains)}, nil)
	require.NoError(t, err)
	assert.True(t, universal)

	universalNaive, err := IsUniversal(sigma, alphabet, Params{"algorithm": string(AlgoNaive)}, nil)
	require.NoError(t, err)
	assert.True(t, universalNaive)
}

func Test_IsUniversal_singleWordIsNotUniversal(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)

	var w Witness
	universal, err := IsUniversal(a, alphabet, Params{"algorithm": string(AlgoAntichains)}, &w)
	require.NoError(t, err)
	assert.False(t, universal)
	assert.Empty(t, w.Symbols)
}

func Test_IsUniversal_rejectsUnknownParam(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)

	_, err := IsUniversal(a, alphabet, Params{"bogus": "x"}, nil)
	assert.Error(t, err)
}

func Test_IsUniversal_antichainAgreesWithNaive(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	samples := []*Nfa{
		SigmaStar(alphabet),
		twoStateChain(alphabet, 0),
		nondeterministicSample(),
	}
	for i, a := range samples {
		naive, err := IsUniversal(a, alphabet, Params{"algorithm": string(AlgoNaive)}, nil)
		require.NoError(t, err)
		anti, err := IsUniversal(a, alphabet, Params{"algorithm": string(AlgoAntichains)}, nil)
		require.NoError(t, err)
		assert.Equal(t, naive, anti, "sample %d", i)
	}
}

func Test_IsIncluded_reflexive(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)

	included, err := IsIncluded(a, a, alphabet, Params{"algorithm": string(AlgoAntichains)}, nil)
	require.NoError(t, err)
	assert.True(t, included)
}

func Test_IsIncluded_properSubsetLanguage(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	small := twoStateChain(alphabet, 0)
	big := SigmaStar(alphabet)

	included, err := IsIncluded(small, big, alphabet, Params{"algorithm": string(AlgoAntichains)}, nil)
	require.NoError(t, err)
	assert.True(t, included)

	reverseIncluded, err := IsIncluded(big, small, alphabet, Params{"algorithm": string(AlgoAntichains)}, nil)
	require.NoError(t, err)
	assert.False(t, reverseIncluded)
}

func Test_IsIncluded_antichainAgreesWithNaive(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	pairs := [][2]*Nfa{
		{twoStateChain(alphabet, 0), SigmaStar(alphabet)},
		{SigmaStar(alphabet), twoStateChain(alphabet, 0)},
		{twoStateChain(alphabet, 0), twoStateChain(alphabet, 1)},
	}
	for i, p := range pairs {
		naive, err := IsIncluded(p[0], p[1], alphabet, Params{"algorithm": string(AlgoNaive)}, nil)
		require.NoError(t, err)
		anti, err := IsIncluded(p[0], p[1], alphabet, Params{"algorithm": string(AlgoAntichains)}, nil)
		require.NoError(t, err)
		assert.Equal(t, naive, anti, "pair %d", i)
	}
}

func Test_IsIncluded_witnessOnFalse(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	small := twoStateChain(alphabet, 0)
	big := twoStateChain(alphabet, 1)

	var w Witness
	included, err := IsIncluded(small, big, alphabet, Params{"algorithm": string(AlgoAntichains)}, &w)
	require.NoError(t, err)
	require.False(t, included)
	assert.Equal(t, []Symbol{0}, w.Symbols)
}

func Test_AreEquivalent_sameLanguage(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	b := twoStateChain(alphabet, 0)

	equiv, err := AreEquivalent(a, b, alphabet, Params{})
	require.NoError(t, err)
	assert.True(t, equiv)
}

func Test_AreEquivalent_differentLanguage(t *testing.T) {
	alphabet := NewIntAlphabet(2)
	a := twoStateChain(alphabet, 0)
	b := twoStateChain(alphabet, 1)

	equiv, err := AreEquivalent(a, b, alphabet, Params{})
	require.NoError(t, err)
	assert.False(t, equiv)
}
