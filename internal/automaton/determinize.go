package automaton

import (
	"sort"

	"github.com/dekarrin/gomata/internal/matarena"
)

// SubsetMap records, for each macro-state, the product state it was given
// and the underlying set of component states it stands for.
type SubsetMap struct {
	arena *matarena.Arena
}

// StatesOf returns the underlying component states of product state s, or
// nil if s is unknown to this map.
func (m *SubsetMap) StatesOf(s State) []State {
	if m == nil || uint32(s) >= uint32(m.arena.Len()) {
		return nil
	}
	return m.arena.States(matarena.Handle(s))
}

// Determinize runs classical subset construction on a, producing a
// deterministic automaton with the same language. a is not mutated. If
// subsetMap is non-nil, *subsetMap is set to describe each product state's
// underlying component-state set.
func Determinize(a *Nfa, subsetMap **SubsetMap) *Nfa {
	arena := matarena.New()
	out := New(a.Alphabet)

	initial := sortedUnique(a.Initial.Elements())
	initHandle := arena.Intern(initial)
	out.AddState()
	out.SetInitial(State(initHandle))
	if containsFinal(a, initial) {
		out.SetFinal(State(initHandle))
	}

	worklist := []matarena.Handle{initHandle}
	done := map[matarena.Handle]bool{}

	for len(worklist) > 0 {
		h := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if done[h] {
			continue
		}
		done[h] = true

		members := arena.States(h)
		posts := make([]StatePost, len(members))
		for i, m := range members {
			posts[i] = a.Delta.StatePost(m)
		}

		symbols := symbolsOutOf(posts)
		for _, sym := range symbols {
			if sym == Epsilon {
				continue
			}
			var succ []State
			for _, p := range posts {
				if i, ok := p.indexOf(sym); ok {
					succ = append(succ, p[i].Targets.Elements()...)
				}
			}
			succSorted := sortedUnique(succ)
			if len(succSorted) == 0 {
				continue
			}
			succHandle := arena.Intern(succSorted)

			for uint32(out.NumStates()) <= uint32(succHandle) {
				out.AddState()
			}
			if !done[succHandle] {
				if containsFinalStates(a, succSorted) {
					out.SetFinal(State(succHandle))
				}
				worklist = append(worklist, succHandle)
			}
			out.AddTransition(State(h), sym, State(succHandle))
		}
	}

	if subsetMap != nil {
		*subsetMap = &SubsetMap{arena: arena}
	}
	return out
}

func containsFinal(a *Nfa, states []State) bool {
	return containsFinalStates(a, states)
}

func containsFinalStates(a *Nfa, states []State) bool {
	for _, s := range states {
		if a.Final.Has(s) {
			return true
		}
	}
	return false
}

func sortedUnique(states []State) []State {
	if len(states) == 0 {
		return nil
	}
	cp := append([]State{}, states...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, s := range cp[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// symbolsOutOf returns the sorted, deduplicated set of ordinary symbols
// appearing in any of posts.
func symbolsOutOf(posts []StatePost) []Symbol {
	seen := map[Symbol]bool{}
	var out []Symbol
	for _, p := range posts {
		for _, sp := range p {
			if !seen[sp.Symbol] {
				seen[sp.Symbol] = true
				out = append(out, sp.Symbol)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
