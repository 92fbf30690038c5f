package automaton

// MakeComplete adds a transition to sink for every (state, symbol) pair in
// alphabet with no outgoing move on that symbol, and makes sink total by
// looping it to itself on every symbol. Idempotent when a is already
// complete: no transitions are added a second time since Delta.Add is
// itself idempotent.
func MakeComplete(a *Nfa, alphabet Alphabet, sink State) {
	for a.NumStates() <= sink {
		a.AddState()
	}
	symbols := alphabet.EnumerateSymbols()
	for s := State(0); s < a.NumStates(); s++ {
		post := a.Delta.StatePost(s)
		for _, sym := range symbols {
			if _, ok := post.indexOf(sym); !ok {
				a.AddTransition(s, sym, sink)
			}
		}
	}
	for _, sym := range symbols {
		a.AddTransition(sink, sym, sink)
	}
}

// ComplementOpts configures Complement's determinization tactic.
type ComplementOpts struct {
	// MinimizeDuringDeterminization selects Brzozowski minimization in place
	// of plain determinization before completion.
	MinimizeDuringDeterminization bool
}

// Complement returns the automaton accepting Σ* \ L(a): determinize a (or
// minimize it, per opts), complete the result against alphabet (allocating a
// sink state unless the subset map already produced the empty-set
// macro-state), then flip the final set against the full state range.
func Complement(a *Nfa, alphabet Alphabet, opts ComplementOpts) *Nfa {
	var det *Nfa
	if opts.MinimizeDuringDeterminization {
		det = MinimizeBrzozowski(a)
	} else {
		det = Determinize(a, nil)
	}

	sink, hasEmptyMacro := findEmptyMacroSink(det)
	if !hasEmptyMacro {
		sink = det.AddState()
	}
	MakeComplete(det, alphabet, sink)

	out := det.Copy()
	out.Final = NewSparseSet(out.NumStates())
	for s := State(0); s < out.NumStates(); s++ {
		if !det.Final.Has(s) {
			out.SetFinal(s)
		}
	}
	return out
}

// findEmptyMacroSink looks for a state with no outgoing transitions and not
// final, which after determinization characterizes the empty-set
// macro-state (the natural dead-end sink), avoiding allocation of a second
// one.
func findEmptyMacroSink(det *Nfa) (State, bool) {
	for s := State(0); s < det.NumStates(); s++ {
		if det.Final.Has(s) {
			continue
		}
		if len(det.Delta.StatePost(s)) == 0 {
			return s, true
		}
	}
	return 0, false
}
