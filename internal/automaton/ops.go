package automaton

// Union returns an Nfa accepting L(lhs) ∪ L(rhs), via a disjoint offset
// merge: lhs is copied as-is, rhs states are shifted by |lhs|, the two
// deltas are concatenated, and the initial/final sets are unioned.
func Union(lhs, rhs *Nfa) *Nfa {
	offset := lhs.NumStates()

	out := lhs.Copy()
	out.Delta.Append(rhs.Delta.Transform(func(s State) State { return s + offset }, true))

	for _, s := range rhs.Initial.Elements() {
		out.SetInitial(s + offset)
	}
	for _, s := range rhs.Final.Elements() {
		out.SetFinal(s + offset)
	}
	return out
}

// ProductOpts configures Intersection's ε behavior.
type ProductOpts struct {
	// PreserveEpsilon, when non-empty, is the set of ε-like symbols for
	// which cross-product moves are added: (s,a)-ε->(s',a), (s,a)-ε->(s,a'),
	// and (s,a)-ε->(s',a') whenever the corresponding component move exists.
	PreserveEpsilon []Symbol
}

// Intersection returns the product automaton for lhs ∩ rhs, using the
// universal synchronized iterator over symbol-aligned posts of the current
// pair of component states. Product states are named on first encounter via
// an internal (lhs,rhs)->State map.
func Intersection(lhs, rhs *Nfa, opts ProductOpts) *Nfa {
	out := New(lhs.Alphabet)

	type pair struct{ l, r State }
	ids := map[pair]State{}
	id := func(l, r State) (State, bool) {
		p := pair{l, r}
		if s, ok := ids[p]; ok {
			return s, false
		}
		s := out.AddState()
		ids[p] = s
		return s, true
	}

	var worklist []pair
	for _, l := range lhs.Initial.Elements() {
		for _, r := range rhs.Initial.Elements() {
			s, _ := id(l, r)
			out.SetInitial(s)
			worklist = append(worklist, pair{l, r})
		}
	}

	epsSet := map[Symbol]bool{}
	for _, e := range opts.PreserveEpsilon {
		epsSet[e] = true
	}

	seen := map[pair]bool{}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		src, _ := id(cur.l, cur.r)

		if lhs.Final.Has(cur.l) && rhs.Final.Has(cur.r) {
			out.SetFinal(src)
		}

		lPost := lhs.Delta.StatePost(cur.l)
		rPost := rhs.Delta.StatePost(cur.r)

		it := NewUniversalIterator(lPost, rPost)
		for it.Advance() {
			sym, parts := it.Current()
			if sym == Epsilon {
				continue
			}
			for _, lt := range parts[0].Targets.Elements() {
				for _, rt := range parts[1].Targets.Elements() {
					tgt, isNew := id(lt, rt)
					out.AddTransition(src, sym, tgt)
					if isNew {
						worklist = append(worklist, pair{lt, rt})
					}
				}
			}
		}

		for e := range epsSet {
			if i, ok := lPost.indexOf(e); ok {
				for _, lt := range targetsAt(lPost, i) {
					tgt, isNew := id(lt, cur.r)
					out.AddTransition(src, Epsilon, tgt)
					if isNew {
						worklist = append(worklist, pair{lt, cur.r})
					}
				}
			}
			if i, ok := rPost.indexOf(e); ok {
				for _, rt := range targetsAt(rPost, i) {
					tgt, isNew := id(cur.l, rt)
					out.AddTransition(src, Epsilon, tgt)
					if isNew {
						worklist = append(worklist, pair{cur.l, rt})
					}
				}
			}
			if i, ok := lPost.indexOf(e); ok {
				if j, ok2 := rPost.indexOf(e); ok2 {
					for _, lt := range targetsAt(lPost, i) {
						for _, rt := range targetsAt(rPost, j) {
							tgt, isNew := id(lt, rt)
							out.AddTransition(src, Epsilon, tgt)
							if isNew {
								worklist = append(worklist, pair{lt, rt})
							}
						}
					}
				}
			}
		}
	}

	return out
}

// targetsAt returns the target states of the symbol-post at index i of post.
func targetsAt(post StatePost, i int) []State {
	return post[i].Targets.Elements()
}

// ConcatOpts configures Concat's ε bridging.
type ConcatOpts struct {
	// UseEpsilon keeps the ε-bridge transitions in the result when true;
	// when false (the zero value), RemoveEpsilon is applied to the bridged
	// result before it is returned.
	UseEpsilon bool
}

// Concat returns the ε-bridged concatenation of lhs then rhs: lhs is copied
// as-is, rhs is relabeled by offset |lhs|, an ε move is added from every lhs
// final to every relabeled rhs initial, the new initials are lhs's initials
// and the new finals are the relabeled rhs finals. Either side having an
// empty initial or final set yields the empty automaton's language (no
// states reachable from initial to final) rather than a special case.
func Concat(lhs, rhs *Nfa, opts ConcatOpts) *Nfa {
	offset := lhs.NumStates()

	out := lhs.Copy()
	out.Final = NewSparseSet(out.NumStates())
	out.Delta.Append(rhs.Delta.Transform(func(s State) State { return s + offset }, true))

	for _, lf := range lhs.Final.Elements() {
		for _, ri := range rhs.Initial.Elements() {
			out.AddTransition(lf, Epsilon, ri+offset)
		}
	}
	for _, rf := range rhs.Final.Elements() {
		out.SetFinal(rf + offset)
	}

	if !opts.UseEpsilon {
		return RemoveEpsilon(out)
	}
	return out
}

// Reverse returns the Nfa with every transition flipped and the initial and
// final sets swapped. This is the "simple" tactic: a direct edge-flip
// rebuild, chosen among the source's three equivalent reverse tactics since
// the spec mandates only the resulting semantics.
func Reverse(a *Nfa) *Nfa {
	out := New(a.Alphabet)
	out.Delta = NewDelta(a.NumStates())
	out.Initial = a.Final.Copy()
	out.Final = a.Initial.Copy()

	a.Delta.ForEachTransition(func(src State, sym Symbol, tgt State) {
		out.AddTransition(tgt, sym, src)
	})
	return out
}

// RemoveEpsilon returns an ε-free Nfa with the same language: for each state
// s, the ε-closure of s is computed, then for every t in that closure and
// every non-ε symbol-post (a, Tgt) of t, (s, a, Tgt) is added to the result;
// s is final iff any state in its closure is final.
func RemoveEpsilon(a *Nfa) *Nfa {
	out := New(a.Alphabet)
	out.Delta = NewDelta(a.NumStates())
	out.Initial = a.Initial.Copy()

	for s := State(0); s < a.NumStates(); s++ {
		closure := a.EpsilonClosure(s)
		if closure.Any(func(t State) bool { return a.Final.Has(t) }) {
			out.SetFinal(s)
		}
		for _, t := range closure.Elements() {
			for _, sp := range a.Delta.StatePost(t) {
				if sp.Symbol == Epsilon {
					continue
				}
				for _, tgt := range sp.Targets.Elements() {
					out.AddTransition(s, sp.Symbol, tgt)
				}
			}
		}
	}
	return out
}
