package automaton

// The synchronized iterators merge-walk a fixed set of sorted StatePost
// sequences by symbol, giving existential ("present in at least one") and
// universal ("present in every one") traversal without materializing an
// intersection or union of symbol sets first. Intersection uses the
// universal one; the antichain inclusion/universality checks use neither.
// Both are grounded on
// original_source/src/tests-synchronized-iterator.cc.

// cursor tracks one sequence's current position during a synchronized walk.
type cursor struct {
	post StatePost
	pos  int
}

func (c *cursor) done() bool { return c.pos >= len(c.post) }

func (c *cursor) symbol() Symbol { return c.post[c.pos].Symbol }

// UniversalIterator advances to the next symbol present in every
// participating sequence.
type UniversalIterator struct {
	cursors []cursor
	started bool
}

// NewUniversalIterator builds an iterator over the given state-posts.
func NewUniversalIterator(posts ...StatePost) *UniversalIterator {
	it := &UniversalIterator{}
	for _, p := range posts {
		it.cursors = append(it.cursors, cursor{post: p})
	}
	return it
}

// Reset rewinds every cursor to the start of its sequence.
func (it *UniversalIterator) Reset() {
	for i := range it.cursors {
		it.cursors[i].pos = 0
	}
	it.started = false
}

// Advance moves to the next symbol common to every sequence, returning
// false once any sequence is exhausted. At each step it finds the maximum
// of the current symbols across all cursors and advances every cursor
// whose symbol is strictly less, repeating until all agree or one runs out.
func (it *UniversalIterator) Advance() bool {
	if len(it.cursors) == 0 {
		return false
	}
	if it.started {
		for i := range it.cursors {
			it.cursors[i].pos++
		}
	}
	it.started = true
	for {
		var max Symbol
		first := true
		for i := range it.cursors {
			if it.cursors[i].done() {
				return false
			}
			s := it.cursors[i].symbol()
			if first || s > max {
				max = s
				first = false
			}
		}
		allEqual := true
		for i := range it.cursors {
			for it.cursors[i].symbol() < max {
				allEqual = false
				it.cursors[i].pos++
				if it.cursors[i].done() {
					return false
				}
			}
		}
		if allEqual {
			return true
		}
	}
}

// Current returns the shared symbol and the per-sequence symbol-posts
// currently aligned on it. Valid only immediately after Advance returns
// true.
func (it *UniversalIterator) Current() (Symbol, []SymbolPost) {
	out := make([]SymbolPost, len(it.cursors))
	var sym Symbol
	for i, c := range it.cursors {
		sym = c.symbol()
		out[i] = c.post[c.pos]
	}
	return sym, out
}

// ExistentialIterator advances to the minimum symbol among every
// non-exhausted participating sequence.
type ExistentialIterator struct {
	cursors []cursor
	started bool
	curSym  Symbol
}

// NewExistentialIterator builds an iterator over the given state-posts.
func NewExistentialIterator(posts ...StatePost) *ExistentialIterator {
	it := &ExistentialIterator{}
	for _, p := range posts {
		it.cursors = append(it.cursors, cursor{post: p})
	}
	return it
}

// Reset rewinds every cursor to the start of its sequence.
func (it *ExistentialIterator) Reset() {
	for i := range it.cursors {
		it.cursors[i].pos = 0
	}
	it.started = false
}

// Advance moves every cursor that was aligned on the previous minimum
// forward, then reports the new minimum symbol among what remains,
// returning false once every sequence is exhausted.
func (it *ExistentialIterator) Advance() bool {
	if it.started {
		for i := range it.cursors {
			if !it.cursors[i].done() && it.cursors[i].symbol() == it.curSym {
				it.cursors[i].pos++
			}
		}
	}
	it.started = true

	var min Symbol
	first := true
	for i := range it.cursors {
		if it.cursors[i].done() {
			continue
		}
		s := it.cursors[i].symbol()
		if first || s < min {
			min = s
			first = false
		}
	}
	if first {
		return false
	}
	it.curSym = min
	return true
}

// Current returns the minimum symbol from the last Advance and the
// symbol-posts of every sequence currently aligned on it.
func (it *ExistentialIterator) Current() (Symbol, []SymbolPost) {
	var out []SymbolPost
	for i := range it.cursors {
		if !it.cursors[i].done() && it.cursors[i].symbol() == it.curSym {
			out = append(out, it.cursors[i].post[it.cursors[i].pos])
		}
	}
	return it.curSym, out
}
