package util

import (
	"fmt"
	"sort"
	"strings"
)

// OrdUint32Set is a sorted, duplicate-free slice of uint32. The automaton
// package uses it for a symbol-post's targets and for symbol sets passed to
// an Alphabet; macro-states are plain sorted []uint32 slices instead.
//
// The zero value is an empty set ready to use.
type OrdUint32Set struct {
	elems []uint32
}

// NewOrdUint32Set builds a set from the given elements, sorting and
// deduplicating them.
func NewOrdUint32Set(elems ...uint32) *OrdUint32Set {
	s := &OrdUint32Set{elems: append([]uint32{}, elems...)}
	s.normalize()
	return s
}

func (s *OrdUint32Set) normalize() {
	sort.Slice(s.elems, func(i, j int) bool { return s.elems[i] < s.elems[j] })
	if len(s.elems) < 2 {
		return
	}
	out := s.elems[:1]
	for _, v := range s.elems[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	s.elems = out
}

// search returns the index at which val is, or would be inserted, plus
// whether it was found.
func (s *OrdUint32Set) search(val uint32) (int, bool) {
	i := sort.Search(len(s.elems), func(i int) bool { return s.elems[i] >= val })
	return i, i < len(s.elems) && s.elems[i] == val
}

// Add inserts val, keeping the set sorted. No-op if val is already present.
func (s *OrdUint32Set) Add(val uint32) {
	i, found := s.search(val)
	if found {
		return
	}
	s.elems = append(s.elems, 0)
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = val
}

// Remove deletes val if present. No-op otherwise.
func (s *OrdUint32Set) Remove(val uint32) {
	i, found := s.search(val)
	if !found {
		return
	}
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
}

// Has reports whether val is a member.
func (s *OrdUint32Set) Has(val uint32) bool {
	_, found := s.search(val)
	return found
}

// Len returns the number of elements.
func (s *OrdUint32Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// Empty reports whether the set has no elements.
func (s *OrdUint32Set) Empty() bool {
	return s.Len() == 0
}

// Elements returns the sorted backing slice. Callers must not mutate it.
func (s *OrdUint32Set) Elements() []uint32 {
	if s == nil {
		return nil
	}
	return s.elems
}

// Copy returns an independent duplicate.
func (s *OrdUint32Set) Copy() *OrdUint32Set {
	if s == nil {
		return NewOrdUint32Set()
	}
	return NewOrdUint32Set(s.elems...)
}

// Union returns a new set containing every element of s and o.
func (s *OrdUint32Set) Union(o *OrdUint32Set) *OrdUint32Set {
	out := s.Copy()
	for _, v := range o.Elements() {
		out.Add(v)
	}
	return out
}

// Intersection returns a new set containing only elements present in both
// s and o.
func (s *OrdUint32Set) Intersection(o *OrdUint32Set) *OrdUint32Set {
	out := NewOrdUint32Set()
	for _, v := range s.Elements() {
		if o.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Difference returns a new set containing elements of s that are not in o.
func (s *OrdUint32Set) Difference(o *OrdUint32Set) *OrdUint32Set {
	out := NewOrdUint32Set()
	for _, v := range s.Elements() {
		if !o.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// DisjointWith reports whether s and o share no elements.
func (s *OrdUint32Set) DisjointWith(o *OrdUint32Set) bool {
	// walk both sorted slices in lockstep instead of a Has() per element so
	// this stays linear; mirrors the merge-walk the synchronized iterators
	// use elsewhere in the automaton package.
	a, b := s.Elements(), o.Elements()
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return false
		}
	}
	return true
}

// Equal reports whether s and o contain the same elements.
func (s *OrdUint32Set) Equal(o *OrdUint32Set) bool {
	a, b := s.Elements(), o.Elements()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Any reports whether any element satisfies predicate.
func (s *OrdUint32Set) Any(predicate func(uint32) bool) bool {
	for _, v := range s.Elements() {
		if predicate(v) {
			return true
		}
	}
	return false
}

// String renders the set as "{a, b, c}" in sorted order.
func (s *OrdUint32Set) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	for i, v := range s.Elements() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteRune('}')
	return sb.String()
}
