// Package util holds small generic helpers shared across the gomata core:
// ordered map iteration, human-readable list joining, and a handful of
// sorted-set adapters used where the automaton packages need a
// duplicate-free, order-preserving collection of unsigned integers.
package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		items = append([]string{}, items...)
		items[len(items)-1] = "and " + items[len(items)-1]
		output += strings.Join(items, ", ")
	}

	return output
}

// Ordered is any type supported by the < operator.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// OrderedKeys returns the keys of m sorted ascending. Use this instead of
// ranging over a map directly anywhere iteration order needs to be
// deterministic (witness reconstruction, textual dumps, test output).
func OrderedKeys[K Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
