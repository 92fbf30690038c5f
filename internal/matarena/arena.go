// Package matarena canonicalizes macro-states — sorted sets of underlying
// automaton states shared between a determinization worklist, its
// subset-map output, and antichain processed/worklist structures — into
// small dense integer handles. Equality on handles reduces to integer
// comparison once a macro-state has been interned, instead of hashing or
// comparing the underlying []uint32 on every lookup; subsumption still
// compares the member slices returned by States.
package matarena

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Handle identifies one interned macro-state.
type Handle uint32

// Arena interns sorted state slices, handing back a stable Handle for each
// distinct content. Callers must pass already-sorted, duplicate-free slices;
// the arena only deduplicates identical sets, it does not normalize order.
type Arena struct {
	byHash  map[[blake2b.Size]byte]Handle
	members [][]uint32
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{byHash: map[[blake2b.Size]byte]Handle{}}
}

// Intern returns the Handle for states, allocating a new one the first time
// this exact sorted content is seen. The slice is copied; callers may reuse
// or mutate their own copy afterward.
func (a *Arena) Intern(states []uint32) Handle {
	h := hashOf(states)
	if handle, ok := a.byHash[h]; ok {
		return handle
	}
	cp := make([]uint32, len(states))
	copy(cp, states)

	handle := Handle(len(a.members))
	a.members = append(a.members, cp)
	a.byHash[h] = handle
	return handle
}

// Lookup returns the Handle for states without interning, and whether it was
// found.
func (a *Arena) Lookup(states []uint32) (Handle, bool) {
	h, ok := a.byHash[hashOf(states)]
	return h, ok
}

// States returns the sorted state slice a Handle was interned from. The
// returned slice must not be mutated.
func (a *Arena) States(h Handle) []uint32 {
	return a.members[h]
}

// Len returns the number of distinct macro-states interned so far.
func (a *Arena) Len() int {
	return len(a.members)
}

// hashOf computes a content hash of a sorted state slice over its
// little-endian byte encoding, so that two equal sorted slices always
// collide to the same key regardless of backing-array identity.
func hashOf(states []uint32) [blake2b.Size]byte {
	buf := make([]byte, 4*len(states))
	for i, s := range states {
		binary.LittleEndian.PutUint32(buf[i*4:], s)
	}
	return blake2b.Sum512(buf)
}
