package automaton

import (
	"sort"

	"github.com/dekarrin/gomata/internal/matarena"
)

// Witness is a counter-example or accepting word, populated by decision
// procedures on certain results (see each function's doc comment for when).
type Witness struct {
	Symbols []Symbol
}

// IsLangEmpty reports whether a accepts no word, via BFS reachability from
// Initial along any transition (including ε). If witness is non-nil and the
// language is non-empty, *witness is set to a shortest accepting run
// reconstructed via a predecessor map.
func IsLangEmpty(a *Nfa, witness *Witness) bool {
	type step struct {
		from State
		sym  Symbol
		has  bool
	}
	pred := map[State]step{}
	visited := NewSparseSet(a.NumStates())
	var queue []State
	for _, s := range a.Initial.Elements() {
		if !visited.Has(s) {
			visited.Add(s)
			queue = append(queue, s)
		}
	}

	var foundFinal State
	found := false
	for _, s := range queue {
		if a.Final.Has(s) {
			foundFinal = s
			found = true
			break
		}
	}

	for i := 0; i < len(queue) && !found; i++ {
		cur := queue[i]
		for _, sp := range a.Delta.StatePost(cur) {
			for _, t := range sp.Targets.Elements() {
				if visited.Has(t) {
					continue
				}
				visited.Add(t)
				pred[t] = step{from: cur, sym: sp.Symbol, has: true}
				queue = append(queue, t)
				if a.Final.Has(t) {
					foundFinal = t
					found = true
				}
			}
		}
	}

	if !found {
		return true
	}
	if witness != nil {
		var syms []Symbol
		cur := foundFinal
		for {
			st, ok := pred[cur]
			if !ok {
				break
			}
			if st.sym != Epsilon {
				syms = append([]Symbol{st.sym}, syms...)
			}
			cur = st.from
		}
		witness.Symbols = syms
	}
	return false
}

// IsUniversal reports whether a accepts every word over alphabet.
//
// Naive: determinize+complement a, then check for language emptiness.
// Antichain: a worklist of macro-states, seeded with Initial, ordered by
// subsumption (X ⊑ Y iff X ⊆ Y, smaller is stronger); a macro-state is bad
// iff disjoint from a.Final. The worklist is popped DFS-style (from the
// back). On a true result, witness is left untouched (Open Question
// Decision #1); on false, witness holds the symbol trace reaching the
// first bad macro-state popped, following the predecessor link recorded
// when each macro-state was first discovered. Successors are generated in
// ascending symbol order, but the trace is not guaranteed to be the
// lexicographically minimal one.
func IsUniversal(a *Nfa, alphabet Alphabet, params Params, witness *Witness) (bool, error) {
	if err := params.validate(); err != nil {
		return false, err
	}
	if params.Algorithm(AlgoAntichains) == AlgoNaive {
		comp := Complement(a, alphabet, ComplementOpts{})
		return IsLangEmpty(comp, nil), nil
	}
	return isUniversalAntichain(a, alphabet, witness), nil
}

func isUniversalAntichain(a *Nfa, alphabet Alphabet, witness *Witness) bool {
	arena := matarena.New()
	initial := sortedUnique(a.Initial.Elements())
	initHandle := arena.Intern(initial)

	type predStep struct {
		from matarena.Handle
		sym  Symbol
	}
	pred := map[matarena.Handle]predStep{}

	processed := []matarena.Handle{}
	worklist := []matarena.Handle{initHandle}
	inWork := map[matarena.Handle]bool{initHandle: true}

	isBad := func(h matarena.Handle) bool {
		for _, s := range arena.States(h) {
			if a.Final.Has(s) {
				return false
			}
		}
		return true
	}

	subsumedBy := func(h matarena.Handle, set []matarena.Handle) bool {
		hs := arena.States(h)
		for _, other := range set {
			if isSubset(arena.States(other), hs) {
				return true
			}
		}
		return false
	}

	pruneSubsumedBy := func(h matarena.Handle, set []matarena.Handle) []matarena.Handle {
		hs := arena.States(h)
		out := set[:0]
		for _, other := range set {
			if !isSubset(hs, arena.States(other)) {
				out = append(out, other)
			}
		}
		return out
	}

	symbols := sortedUnique(alphabet.EnumerateSymbols())
	for len(worklist) > 0 {
		h := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		delete(inWork, h)

		if isBad(h) {
			if witness != nil {
				var syms []Symbol
				cur := h
				for {
					st, ok := pred[cur]
					if !ok {
						break
					}
					syms = append([]Symbol{st.sym}, syms...)
					cur = st.from
				}
				witness.Symbols = syms
			}
			return false
		}

		members := arena.States(h)
		posts := make([]StatePost, len(members))
		for i, m := range members {
			posts[i] = a.Delta.StatePost(m)
		}
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
			succHandle := arena.Intern(succSorted)

			if _, already := pred[succHandle]; !already && succHandle != initHandle {
				pred[succHandle] = predStep{from: h, sym: sym}
			}

			if subsumedBy(succHandle, processed) || subsumedBy(succHandle, worklist) {
				continue
			}
			processed = pruneSubsumedBy(succHandle, processed)
			worklist = pruneSubsumedBy(succHandle, worklist)
			worklist = append(worklist, succHandle)
			inWork[succHandle] = true
		}
		processed = append(processed, h)
	}
	return true
}

func isSubset(sub, sup []State) bool {
	supSet := map[State]bool{}
	for _, s := range sup {
		supSet[s] = true
	}
	for _, s := range sub {
		if !supSet[s] {
			return false
		}
	}
	return true
}

// IsIncluded reports whether L(smaller) ⊆ L(bigger) over alphabet.
//
// Naive: emptiness of smaller ∩ complement(bigger).
// Antichain: a worklist of pairs (p, Q) where p is a state of smaller and Q
// a subset of bigger's states; subsumption (p,Q) ⊑ (p',Q') iff p=p' and
// Q ⊆ Q'; bad iff p is final in smaller and Q is disjoint from bigger.Final.
// The antichain traversal takes successor symbols from p's post in
// ascending order and finds each one in the posts of Q's members by binary
// search; it does not use the synchronized ExistentialIterator.
func IsIncluded(smaller, bigger *Nfa, alphabet Alphabet, params Params, witness *Witness) (bool, error) {
	if err := params.validate(); err != nil {
		return false, err
	}
	if params.Algorithm(AlgoAntichains) == AlgoNaive {
		comp := Complement(bigger, alphabet, ComplementOpts{})
		prod := Intersection(smaller, comp, ProductOpts{})
		return IsLangEmpty(prod, nil), nil
	}
	return isIncludedAntichain(smaller, bigger, witness), nil
}

type pqPair struct {
	p State
	Q matarena.Handle
}

func isIncludedAntichain(smaller, bigger *Nfa, witness *Witness) bool {
	arena := matarena.New()

	type predStep struct {
		from pqPair
		sym  Symbol
	}
	pred := map[pqPair]predStep{}

	var worklist []pqPair
	processed := map[State][]matarena.Handle{}
	inWork := map[pqPair]bool{}
	initPairs := map[pqPair]bool{}

	bigInit := sortedUnique(bigger.Initial.Elements())
	bigInitHandle := arena.Intern(bigInit)
	for _, p := range smaller.Initial.Elements() {
		pair := pqPair{p: p, Q: bigInitHandle}
		worklist = append(worklist, pair)
		inWork[pair] = true
		initPairs[pair] = true
	}

	isBad := func(pr pqPair) bool {
		if !smaller.Final.Has(pr.p) {
			return false
		}
		for _, q := range arena.States(pr.Q) {
			if bigger.Final.Has(q) {
				return false
			}
		}
		return true
	}

	subsumedByAny := func(pr pqPair, set []matarena.Handle) bool {
		qs := arena.States(pr.Q)
		for _, other := range set {
			if isSubset(arena.States(other), qs) {
				return true
			}
		}
		return false
	}

	pruneSubsumedBy := func(pr pqPair, set []matarena.Handle) []matarena.Handle {
		qs := arena.States(pr.Q)
		out := set[:0]
		for _, other := range set {
			if !isSubset(qs, arena.States(other)) {
				out = append(out, other)
			}
		}
		return out
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		delete(inWork, cur)

		if isBad(cur) {
			if witness != nil {
				var syms []Symbol
				walk := cur
				for {
					st, ok := pred[walk]
					if !ok {
						break
					}
					syms = append([]Symbol{st.sym}, syms...)
					walk = st.from
				}
				witness.Symbols = syms
			}
			return false
		}

		pPost := smaller.Delta.StatePost(cur.p)
		qMembers := arena.States(cur.Q)
		qPosts := make([]StatePost, len(qMembers))
		for i, m := range qMembers {
			qPosts[i] = bigger.Delta.StatePost(m)
		}

		symbols := make([]Symbol, 0, len(pPost))
		for _, sp := range pPost {
			if sp.Symbol != Epsilon {
				symbols = append(symbols, sp.Symbol)
			}
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, sym := range symbols {
			i, _ := pPost.indexOf(sym)
			var bigSucc []State
			for _, qp := range qPosts {
				if j, ok := qp.indexOf(sym); ok {
					bigSucc = append(bigSucc, qp[j].Targets.Elements()...)
				}
			}
			bigSuccSorted := sortedUnique(bigSucc)
			qHandle := arena.Intern(bigSuccSorted)

			for _, pNext := range pPost[i].Targets.Elements() {
				next := pqPair{p: pNext, Q: qHandle}
				if _, already := pred[next]; !already && !initPairs[next] {
					pred[next] = predStep{from: cur, sym: sym}
				}
				if subsumedByAny(next, processed[next.p]) {
					continue
				}
				processed[next.p] = pruneSubsumedBy(next, processed[next.p])
				if inWork[next] {
					continue
				}
				worklist = append(worklist, next)
				inWork[next] = true
			}
		}
		processed[cur.p] = append(processed[cur.p], cur.Q)
	}
	return true
}

// AreEquivalent reports whether a and b accept the same language over
// alphabet, as IsIncluded(a,b) ∧ IsIncluded(b,a).
func AreEquivalent(a, b *Nfa, alphabet Alphabet, params Params) (bool, error) {
	fwd, err := IsIncluded(a, b, alphabet, params, nil)
	if err != nil {
		return false, err
	}
	if !fwd {
		return false, nil
	}
	return IsIncluded(b, a, alphabet, params, nil)
}
