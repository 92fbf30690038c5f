package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/gomata/internal/util"
)

// SymbolPost pairs a symbol with the ordered, duplicate-free set of states
// it leads to from some source state.
type SymbolPost struct {
	Symbol  Symbol
	Targets *util.OrdUint32Set
}

func (sp SymbolPost) String() string {
	sym := fmt.Sprintf("%d", sp.Symbol)
	if sp.Symbol == Epsilon {
		sym = "ε"
	}
	return fmt.Sprintf("-(%s)->%s", sym, sp.Targets.String())
}

// StatePost is the sorted-by-symbol sequence of symbol-posts leaving one
// state. Epsilon, realized as the maximum Symbol value, always sorts last.
type StatePost []SymbolPost

// indexOf returns the position of sym in the post (and whether it was
// found) via binary search; the slice is always kept sorted by Symbol.
func (sp StatePost) indexOf(sym Symbol) (int, bool) {
	i := sort.Search(len(sp), func(i int) bool { return sp[i].Symbol >= sym })
	return i, i < len(sp) && sp[i].Symbol == sym
}

// Delta is the transition store: a state-indexed sequence of state-posts.
// Unused indices hold an empty post. For every (s, a, t) stored, t must be
// less than the delta's capacity — Add is responsible for maintaining that.
type Delta struct {
	posts []StatePost
}

// NewDelta returns an empty Delta with room for capacity states.
func NewDelta(capacity uint32) *Delta {
	return &Delta{posts: make([]StatePost, capacity)}
}

// Capacity returns one past the highest state Delta currently has room for.
func (d *Delta) Capacity() uint32 {
	return uint32(len(d.posts))
}

// grow ensures posts has room for index n (0-based), extending with empty
// state-posts as needed.
func (d *Delta) grow(n uint32) {
	if n < uint32(len(d.posts)) {
		return
	}
	grown := make([]StatePost, n+1)
	copy(grown, d.posts)
	d.posts = grown
}

// Add inserts the transition (src, sym, tgt), creating the symbol-post for
// sym if absent and inserting tgt into its targets in sorted, duplicate-free
// order. It is idempotent: adding the same transition twice has no
// additional effect. Both src and tgt capacity are grown as needed.
func (d *Delta) Add(src State, sym Symbol, tgt State) {
	max := src
	if tgt > max {
		max = tgt
	}
	d.grow(max)

	post := d.posts[src]
	i, found := post.indexOf(sym)
	if !found {
		post = append(post, SymbolPost{})
		copy(post[i+1:], post[i:])
		post[i] = SymbolPost{Symbol: sym, Targets: util.NewOrdUint32Set()}
	}
	post[i].Targets.Add(tgt)
	d.posts[src] = post
}

// Remove deletes the transition (src, sym, tgt) if present. If the
// resulting targets set becomes empty, the symbol-post itself is removed.
// Fails silently if the transition is absent, matching spec.md §4.1.
func (d *Delta) Remove(src State, sym Symbol, tgt State) {
	if src >= d.Capacity() {
		return
	}
	post := d.posts[src]
	i, found := post.indexOf(sym)
	if !found {
		return
	}
	post[i].Targets.Remove(tgt)
	if post[i].Targets.Empty() {
		post = append(post[:i], post[i+1:]...)
	}
	d.posts[src] = post
}

// Contains reports whether the transition (src, sym, tgt) is stored.
func (d *Delta) Contains(src State, sym Symbol, tgt State) bool {
	if src >= d.Capacity() {
		return false
	}
	post := d.posts[src]
	i, found := post.indexOf(sym)
	if !found {
		return false
	}
	return post[i].Targets.Has(tgt)
}

// StatePost returns the sorted symbol-post list leaving src. The returned
// slice must not be mutated by callers; use Add/Remove instead.
func (d *Delta) StatePost(src State) StatePost {
	if src >= d.Capacity() {
		return nil
	}
	return d.posts[src]
}

// ForEachTransition calls f once for every (src, sym, tgt) triple stored, in
// source-then-symbol-then-target order.
func (d *Delta) ForEachTransition(f func(src State, sym Symbol, tgt State)) {
	for src := range d.posts {
		for _, sp := range d.posts[src] {
			for _, tgt := range sp.Targets.Elements() {
				f(State(src), sp.Symbol, tgt)
			}
		}
	}
}

// Transform returns a new Delta with every target t replaced by f(t).
// Sorted-ness of the result's targets is preserved only when f is monotone
// (e.g. a fixed offset, as concatenation and union use); when monotone is
// false the caller is asking for a non-monotone remap and Transform
// re-sorts and deduplicates each produced symbol-post's targets itself.
func (d *Delta) Transform(f func(State) State, monotone bool) *Delta {
	out := NewDelta(d.Capacity())
	d.ForEachTransition(func(src Symbol, sym Symbol, tgt State) {
		out.Add(src, sym, f(tgt))
	})
	// Add() already keeps targets sorted and deduplicated regardless of
	// monotone, since it inserts one at a time; the monotone flag only
	// documents the caller's intent for offset-style transforms where no
	// reordering among targets happens. A non-monotone f may still merge
	// previously-distinct targets into one, which Add's per-symbol-post
	// handles correctly since it inserts into an already-sorted set.
	_ = monotone
	return out
}

// Append concatenates every state-post of other onto the end of d's own
// posts, without shifting any state numbers. This realizes the
// disjoint-union-after-transform idiom used by Union and Concat: first
// Transform(other's delta) by a state offset, then Append the result.
func (d *Delta) Append(other *Delta) {
	base := d.Capacity()
	d.grow(base + other.Capacity() - 1)
	for i, post := range other.posts {
		d.posts[base+uint32(i)] = post
	}
}

// Copy returns an independent duplicate of d.
func (d *Delta) Copy() *Delta {
	out := NewDelta(d.Capacity())
	for i, post := range d.posts {
		cp := make(StatePost, len(post))
		for j, sp := range post {
			cp[j] = SymbolPost{Symbol: sp.Symbol, Targets: sp.Targets.Copy()}
		}
		out.posts[i] = cp
	}
	return out
}

// String renders the delta as one line per state with outgoing moves,
// skipping states with no outgoing transitions.
func (d *Delta) String() string {
	var sb strings.Builder
	first := true
	for src, post := range d.posts {
		if len(post) == 0 {
			continue
		}
		if !first {
			sb.WriteRune('\n')
		}
		first = false
		fmt.Fprintf(&sb, "%d: ", src)
		for i, sp := range post {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(sp.String())
		}
	}
	return sb.String()
}
