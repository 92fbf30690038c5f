package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/gomata/internal/automaton/aerr"
	"github.com/dekarrin/rosed"
)

// Nfa is a nondeterministic finite automaton over integer symbols: a set of
// initial states, a set of final states, a transition relation, and an
// optional observing reference to an Alphabet. An Nfa owns its Initial,
// Final, and Delta exclusively; Alphabet, when set, is shared and never
// copied by operations that build a new Nfa from this one.
type Nfa struct {
	Initial  *SparseSet
	Final    *SparseSet
	Delta    *Delta
	Alphabet Alphabet
}

// New returns an empty Nfa with no states, optionally observing alphabet.
func New(alphabet Alphabet) *Nfa {
	return &Nfa{
		Initial:  NewSparseSet(0),
		Final:    NewSparseSet(0),
		Delta:    NewDelta(0),
		Alphabet: alphabet,
	}
}

// NumStates returns one past the highest state this Nfa currently has room
// for; not every index in [0, NumStates) need actually be reachable.
func (a *Nfa) NumStates() uint32 {
	return a.Delta.Capacity()
}

// AddState returns the next unused state id, growing capacity to make room
// for it.
func (a *Nfa) AddState() State {
	next := a.Delta.Capacity()
	a.Delta.grow(next)
	return next
}

// SetInitial marks s as an initial state.
func (a *Nfa) SetInitial(s State) {
	a.Initial.Add(s)
}

// SetFinal marks s as a final state.
func (a *Nfa) SetFinal(s State) {
	a.Final.Add(s)
}

// AddTransition adds (src, sym, tgt), growing the Nfa's state capacity as
// needed so src and tgt are both in range.
func (a *Nfa) AddTransition(src State, sym Symbol, tgt State) {
	a.Delta.Add(src, sym, tgt)
}

// EpsilonClosure returns the set of states reachable from s via zero or more
// ε-transitions, s itself included.
func (a *Nfa) EpsilonClosure(s State) *SparseSet {
	closure := NewSparseSet(a.NumStates())
	closure.Add(s)
	worklist := []State{s}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		post := a.Delta.StatePost(cur)
		i, found := post.indexOf(Epsilon)
		if !found {
			continue
		}
		for _, t := range post[i].Targets.Elements() {
			if !closure.Has(t) {
				closure.Add(t)
				worklist = append(worklist, t)
			}
		}
	}
	return closure
}

// IsInLang reports whether word is accepted, by simulating every active
// state in parallel from Initial. This restarts a full run on every call
// rather than maintaining incremental state, since streaming/online
// recognition is out of scope.
func (a *Nfa) IsInLang(word []Symbol) bool {
	active := NewSparseSet(a.NumStates())
	for _, s := range a.Initial.Elements() {
		for _, e := range a.EpsilonClosure(s).Elements() {
			active.Add(e)
		}
	}
	for _, sym := range word {
		next := NewSparseSet(a.NumStates())
		for _, s := range active.Elements() {
			post := a.Delta.StatePost(s)
			i, found := post.indexOf(sym)
			if !found {
				continue
			}
			for _, t := range post[i].Targets.Elements() {
				for _, e := range a.EpsilonClosure(t).Elements() {
					next.Add(e)
				}
			}
		}
		active = next
		if active.Empty() {
			return false
		}
	}
	return active.Any(func(s State) bool { return a.Final.Has(s) })
}

// Trim removes every state not on some path from an initial state to a
// final state, renumbering survivors contiguously from 0. Renumbering
// preserves the relative order states had before trimming.
func (a *Nfa) Trim() *Nfa {
	reachable := a.reachableFromInitial()
	coReachable := a.reachableToFinal()

	keep := NewSparseSet(a.NumStates())
	for _, s := range reachable.Elements() {
		if coReachable.Has(s) {
			keep.Add(s)
		}
	}

	kept := keep.Elements()
	renumber := make(map[State]State, len(kept))
	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })
	for i, s := range kept {
		renumber[s] = State(i)
	}

	out := New(a.Alphabet)
	out.Delta = NewDelta(uint32(len(kept)))
	for _, s := range kept {
		news := renumber[s]
		if a.Initial.Has(s) {
			out.SetInitial(news)
		}
		if a.Final.Has(s) {
			out.SetFinal(news)
		}
		post := a.Delta.StatePost(s)
		for _, sp := range post {
			for _, t := range sp.Targets.Elements() {
				if newt, ok := renumber[t]; ok {
					out.AddTransition(news, sp.Symbol, newt)
				}
			}
		}
	}
	return out
}

// reachableFromInitial computes forward reachability via any transition.
func (a *Nfa) reachableFromInitial() *SparseSet {
	visited := NewSparseSet(a.NumStates())
	var worklist []State
	for _, s := range a.Initial.Elements() {
		visited.Add(s)
		worklist = append(worklist, s)
	}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, sp := range a.Delta.StatePost(cur) {
			for _, t := range sp.Targets.Elements() {
				if !visited.Has(t) {
					visited.Add(t)
					worklist = append(worklist, t)
				}
			}
		}
	}
	return visited
}

// reachableToFinal computes backward reachability to any final state, by
// building the reverse adjacency on the fly.
func (a *Nfa) reachableToFinal() *SparseSet {
	preds := make(map[State][]State)
	a.Delta.ForEachTransition(func(src State, _ Symbol, tgt State) {
		preds[tgt] = append(preds[tgt], src)
	})

	visited := NewSparseSet(a.NumStates())
	var worklist []State
	for _, s := range a.Final.Elements() {
		visited.Add(s)
		worklist = append(worklist, s)
	}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, p := range preds[cur] {
			if !visited.Has(p) {
				visited.Add(p)
				worklist = append(worklist, p)
			}
		}
	}
	return visited
}

// Copy returns an independent duplicate sharing the same observed Alphabet.
func (a *Nfa) Copy() *Nfa {
	return &Nfa{
		Initial:  a.Initial.Copy(),
		Final:    a.Final.Copy(),
		Delta:    a.Delta.Copy(),
		Alphabet: a.Alphabet,
	}
}

// symbolName renders sym using the Nfa's alphabet if one is attached,
// falling back to the raw integer otherwise.
func (a *Nfa) symbolName(sym Symbol) string {
	if sym == Epsilon {
		return "ε"
	}
	if a.Alphabet == nil {
		return fmt.Sprintf("%d", sym)
	}
	name, err := a.Alphabet.ReverseTranslateSymbol(sym)
	if err != nil {
		return fmt.Sprintf("%d", sym)
	}
	return name
}

// Dump renders the Nfa as a state/symbol/targets table via rosed, for
// debugging; it is not a serialization format and carries no round-trip
// guarantee (textual round-trip belongs to the external .mata format).
func (a *Nfa) Dump() string {
	data := [][]string{{"state", "init", "final", "symbol", "targets"}}
	for s := State(0); s < a.NumStates(); s++ {
		post := a.Delta.StatePost(s)
		initMark, finalMark := "", ""
		if a.Initial.Has(s) {
			initMark = "*"
		}
		if a.Final.Has(s) {
			finalMark = "*"
		}
		if len(post) == 0 {
			data = append(data, []string{fmt.Sprintf("%d", s), initMark, finalMark, "", ""})
			continue
		}
		for i, sp := range post {
			row := []string{"", "", "", a.symbolName(sp.Symbol), sp.Targets.String()}
			if i == 0 {
				row[0], row[1], row[2] = fmt.Sprintf("%d", s), initMark, finalMark
			}
			data = append(data, row)
		}
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// CheckPrecondition validates that every stored transition references states
// within capacity, returning aerr.ErrPrecondition wrapped with detail if not.
// No operation in this package calls it; callers run it themselves.
func (a *Nfa) CheckPrecondition() error {
	capacity := a.NumStates()
	var bad error
	a.Delta.ForEachTransition(func(src State, _ Symbol, tgt State) {
		if bad != nil {
			return
		}
		if src >= capacity || tgt >= capacity {
			bad = aerr.New(fmt.Sprintf("transition (%d,_,%d) references a state outside capacity %d", src, tgt, capacity), aerr.ErrPrecondition)
		}
	})
	return bad
}
