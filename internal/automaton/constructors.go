package automaton

// EmptyStringNfa returns the automaton accepting exactly the empty word: one
// state, both initial and final, no transitions. It is the concatenation
// identity: Concat(A, EmptyStringNfa()) and Concat(EmptyStringNfa(), A) both
// preserve L(A).
func EmptyStringNfa(alphabet Alphabet) *Nfa {
	out := New(alphabet)
	s := out.AddState()
	out.SetInitial(s)
	out.SetFinal(s)
	return out
}

// SigmaStar returns the one-state universal automaton over every ordinary
// symbol alphabet enumerates: a single initial-and-final state looping on
// every symbol. It is the intersection identity over alphabet: Intersection
// of any A with SigmaStar(alphabet) preserves L(A) when alphabet covers A's
// own alphabet.
func SigmaStar(alphabet Alphabet) *Nfa {
	out := New(alphabet)
	s := out.AddState()
	out.SetInitial(s)
	out.SetFinal(s)
	for _, sym := range alphabet.EnumerateSymbols() {
		out.AddTransition(s, sym, s)
	}
	return out
}

// FromWord returns the automaton accepting exactly the single word w: a
// chain of |w|+1 states, the first initial, the last final.
func FromWord(alphabet Alphabet, w []Symbol) *Nfa {
	out := New(alphabet)
	s := out.AddState()
	out.SetInitial(s)
	cur := s
	for _, sym := range w {
		next := out.AddState()
		out.AddTransition(cur, sym, next)
		cur = next
	}
	out.SetFinal(cur)
	return out
}
