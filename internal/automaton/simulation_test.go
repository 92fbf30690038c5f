package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// redundantStateSample builds a small NFA where states 1 and 2 are
// behaviorally equivalent (both final, both dead ends), so forward
// simulation should relate them in both directions.
func redundantStateSample() *Nfa {
	alphabet := NewIntAlphabet(1)
	a := New(alphabet)
	s0 := a.AddState()
	s1 := a.AddState()
	s2 := a.AddState()
	a.SetInitial(s0)
	a.SetFinal(s1)
	a.SetFinal(s2)
	a.AddTransition(s0, 0, s1)
	a.AddTransition(s0, 0, s2)
	return a
}

func Test_ForwardSimulation_relatesEquivalentStates(t *testing.T) {
	a := redundantStateSample()
	sim := ForwardSimulation(a)

	assert.True(t, sim[1][2])
	assert.True(t, sim[2][1])
}

func Test_QuotientBySimulation_mergesRedundantStates(t *testing.T) {
	a := redundantStateSample()
	sim := ForwardSimulation(a)
	q := QuotientBySimulation(a, sim)

	assert.Less(t, q.NumStates(), a.NumStates())
	assert.Equal(t, a.IsInLang([]Symbol{0}), q.IsInLang([]Symbol{0}))
	assert.Equal(t, a.IsInLang(nil), q.IsInLang(nil))
}

func Test_ReduceForwardSimulation_preservesLanguage(t *testing.T) {
	a := redundantStateSample()
	reduced := ReduceForwardSimulation(a)

	assert.Equal(t, a.IsInLang([]Symbol{0}), reduced.IsInLang([]Symbol{0}))
}

func Test_ReduceBackwardSimulation_preservesLanguage(t *testing.T) {
	a := redundantStateSample()
	reduced := ReduceBackwardSimulation(a)

	assert.Equal(t, a.IsInLang([]Symbol{0}), reduced.IsInLang([]Symbol{0}))
}

func Test_ApplyReduce_noneReturnsSameAutomaton(t *testing.T) {
	a := redundantStateSample()
	out := ApplyReduce(a, ReduceNone)
	assert.Same(t, a, out)
}

func Test_ApplyReduce_dispatchesByKind(t *testing.T) {
	a := redundantStateSample()

	fwd := ApplyReduce(a, ReduceForward)
	assert.Equal(t, a.IsInLang([]Symbol{0}), fwd.IsInLang([]Symbol{0}))

	bidi := ApplyReduce(a, ReduceBidirectional)
	assert.Equal(t, a.IsInLang([]Symbol{0}), bidi.IsInLang([]Symbol{0}))
}
