package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nondeterministicSample builds the classical two-initial-branch NFA where
// determinization must merge states 1 and 2 under symbol 0.
func nondeterministicSample() *Nfa {
	alphabet := NewIntAlphabet(2)
	a := New(alphabet)
	s0 := a.AddState()
	s1 := a.AddState()
	s2 := a.AddState()
	a.SetInitial(s0)
	a.SetFinal(s2)
	a.AddTransition(s0, 0, s0)
	a.AddTransition(s0, 0, s1)
	a.AddTransition(s1, 1, s2)
	a.AddTransition(s0, 1, s2)
	return a
}

func Test_Determinize_preservesLanguage(t *testing.T) {
	a := nondeterministicSample()
	det := Determinize(a, nil)

	assert.Equal(t, a.IsInLang([]Symbol{1}), det.IsInLang([]Symbol{1}))
	assert.Equal(t, a.IsInLang([]Symbol{0, 1}), det.IsInLang([]Symbol{0, 1}))
	assert.Equal(t, a.IsInLang([]Symbol{0, 0, 1}), det.IsInLang([]Symbol{0, 0, 1}))
	assert.Equal(t, a.IsInLang([]Symbol{0, 0}), det.IsInLang([]Symbol{0, 0}))
}

func Test_Determinize_resultIsDeterministic(t *testing.T) {
	a := nondeterministicSample()
	det := Determinize(a, nil)

	assert.LessOrEqual(t, det.Initial.Len(), 1)
	for s := State(0); s < det.NumStates(); s++ {
		seen := map[Symbol]bool{}
		for _, sp := range det.Delta.StatePost(s) {
			require.False(t, seen[sp.Symbol], "state %d has duplicate symbol-post for %d", s, sp.Symbol)
			seen[sp.Symbol] = true
			assert.Equal(t, 1, sp.Targets.Len())
		}
	}
}

func Test_Determinize_subsetMapDescribesMacroStates(t *testing.T) {
	a := nondeterministicSample()
	var subsetMap *SubsetMap
	det := Determinize(a, &subsetMap)

	require.NotNil(t, subsetMap)
	initStates := []State{}
	for _, s := range det.Initial.Elements() {
		initStates = subsetMap.StatesOf(s)
	}
	assert.ElementsMatch(t, []State{0}, initStates)
}

func Test_Determinize_ofAlreadyDeterministicIsStable(t *testing.T) {
	alphabet := NewIntAlphabet(1)
	a := twoStateChain(alphabet, 0)

	det := Determinize(a, nil)
	assert.Equal(t, a.IsInLang([]Symbol{0}), det.IsInLang([]Symbol{0}))
}
