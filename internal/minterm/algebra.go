// Package minterm implements BDD-based mintermization: translating
// Boolean-formula transitions (bit-vector alphabets) into a partition of
// satisfiable minterms, each of which becomes one fresh explicit symbol in
// the output automaton.
//
// DESIGN NOTES (original_source, §9) calls for parameterizing the Boolean
// algebra rather than hard-coding BDDs, so a future domain (e.g. interval
// predicates) can plug into the same minterm-partition algorithm. Node is an
// opaque handle into whatever BooleanAlgebra produced it; the shipped
// implementation is Manager, a scoped binary decision diagram.
package minterm

// Node is an opaque handle into a BooleanAlgebra implementation's internal
// representation of one Boolean formula.
type Node uint32

// BooleanAlgebra is the minimal capability set the minterm-partition
// algorithm needs from its Boolean representation.
type BooleanAlgebra interface {
	True() Node
	False() Node
	Var(name string) Node
	And(a, b Node) Node
	Or(a, b Node) Node
	Not(a Node) Node
	// IsFalse reports whether n is the unsatisfiable formula.
	IsFalse(n Node) bool
	// Implies reports whether a implies b (a ⇒ b), i.e. every assignment
	// satisfying a also satisfies b.
	Implies(a, b Node) bool
}
