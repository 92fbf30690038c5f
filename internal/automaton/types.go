// Package automaton is the core of gomata: nondeterministic finite automata
// over integer symbols, their algebraic operations, state-space reductions,
// decision procedures, and the segmentation/noodlification facility used by
// string-constraint solvers built atop it.
//
// The package is single-threaded cooperative: every operation here runs to
// completion on the calling goroutine and mutates only the Nfa it was asked
// to build. Nothing in this package starts a goroutine or blocks on I/O.
package automaton

import (
	"fmt"

	"github.com/dekarrin/gomata/internal/automaton/aerr"
	"github.com/dekarrin/gomata/internal/util"
)

// State is a state identifier. States of a given Nfa form a contiguous range
// [0, capacity).
type State = uint32

// Symbol is an input symbol identifier.
type Symbol = uint32

// Epsilon is the distinguished silent-transition symbol. It is realized as
// the maximum Symbol value so that, combined with sorted symbol-posts, it
// always sorts last within a state-post without needing to track the
// highest ordinary symbol in use.
const Epsilon Symbol = ^Symbol(0)

// Algorithm selects which concrete tactic an operation should use.
type Algorithm string

const (
	// AlgoClassical is subset-construction style determinization/complement.
	AlgoClassical Algorithm = "classical"
	// AlgoAntichains is the antichain-pruned worklist family used by
	// inclusion and universality.
	AlgoAntichains Algorithm = "antichains"
	// AlgoNaive composes an operation out of complement+intersect+emptiness
	// rather than a dedicated algorithm.
	AlgoNaive Algorithm = "naive"
	// AlgoSimulation selects simulation-based reduction instead of exact
	// minimization.
	AlgoSimulation Algorithm = "simulation"
)

// ReduceKind selects which simulation direction, if any, a reduction pass
// should apply before an expensive downstream operation (noodlification in
// particular).
type ReduceKind string

const (
	ReduceNone         ReduceKind = "none"
	ReduceForward      ReduceKind = "forward"
	ReduceBackward     ReduceKind = "backward"
	ReduceBidirectional ReduceKind = "bidirectional"
)

// Params is the key-value map operations accept for algorithm selection, as
// spec.md §6 describes: an unrecognized key or value fails loudly rather
// than being silently ignored.
type Params map[string]string

// recognizedParams is consulted by validate so that a typo'd key is reported
// instead of quietly doing nothing.
var recognizedParams = map[string][]string{
	"algorithm": {string(AlgoClassical), string(AlgoAntichains), string(AlgoNaive), string(AlgoSimulation)},
	"minimize":  {"true", "false"},
	"reduce":    {string(ReduceNone), string(ReduceForward), string(ReduceBackward), string(ReduceBidirectional)},
}

// validate rejects any key gomata doesn't recognize, and any value not in
// that key's accepted set, per spec.md §6's "fails loudly" rule.
func (p Params) validate() error {
	for k, v := range p {
		allowed, ok := recognizedParams[k]
		if !ok {
			keys := util.OrderedKeys(recognizedParams)
			return aerr.New(fmt.Sprintf("unrecognized param key %q (known keys: %s)", k, util.MakeTextList(keys)), aerr.ErrUnknownAlgorithm)
		}
		found := false
		for _, a := range allowed {
			if a == v {
				found = true
				break
			}
		}
		if !found {
			return aerr.New(fmt.Sprintf("unrecognized value %q for param %q (known values: %s)", v, k, util.MakeTextList(allowed)), aerr.ErrUnknownAlgorithm)
		}
	}
	return nil
}

// Algorithm returns the requested algorithm, defaulting to def if unset.
func (p Params) Algorithm(def Algorithm) Algorithm {
	if v, ok := p["algorithm"]; ok {
		return Algorithm(v)
	}
	return def
}

// Minimize returns whether minimization was requested, defaulting to false.
func (p Params) Minimize() bool {
	return p["minimize"] == "true"
}

// Reduce returns the requested reduction kind, defaulting to ReduceNone.
func (p Params) Reduce() ReduceKind {
	if v, ok := p["reduce"]; ok {
		return ReduceKind(v)
	}
	return ReduceNone
}
