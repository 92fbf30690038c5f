package minterm

import "fmt"

// node is one interior BDD node: test variable varIdx, low branch (variable
// false), high branch (variable true). Terminal nodes are the two fixed
// handles nodeFalse and nodeTrue below; entries 0 and 1 of nodes are
// placeholders reserved for them, not interior nodes.
type node struct {
	varIdx    int
	low, high Node
}

const (
	nodeFalse Node = 0
	nodeTrue  Node = 1
)

type applyKey struct {
	op   byte
	a, b Node
}

// Manager is a scoped, reduced (hash-consed) binary decision diagram: one
// BDD variable per distinct name passed to Var, fixed ordering by order of
// first use. It is acquired at the top of one Mintermize call and Close'd
// via defer before return; Node values are non-owning handles into it and
// must not escape past Close.
type Manager struct {
	nodes     []node
	uniqueTab map[node]Node
	applyTab  map[applyKey]Node
	varNames  []string
	varIdx    map[string]int
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		nodes:     []node{{}, {}}, // indices 0,1 reserved for the terminals
		uniqueTab: map[node]Node{},
		applyTab:  map[applyKey]Node{},
		varIdx:    map[string]int{},
	}
}

// Close releases the Manager's internal tables. Node handles issued before
// Close must not be used afterward.
func (m *Manager) Close() {
	m.nodes = nil
	m.uniqueTab = nil
	m.applyTab = nil
	m.varNames = nil
	m.varIdx = nil
}

func (m *Manager) True() Node  { return nodeTrue }
func (m *Manager) False() Node { return nodeFalse }

// Var returns the BDD variable node for name, allocating a fresh variable
// index the first time name is seen.
func (m *Manager) Var(name string) Node {
	idx, ok := m.varIdx[name]
	if !ok {
		idx = len(m.varNames)
		m.varIdx[name] = idx
		m.varNames = append(m.varNames, name)
	}
	return m.makeNode(idx, nodeFalse, nodeTrue)
}

// makeNode returns the canonical handle for (varIdx, low, high), applying
// the standard BDD reduction rule (low == high collapses to that branch)
// and hash-consing against uniqueTab otherwise.
func (m *Manager) makeNode(varIdx int, low, high Node) Node {
	if low == high {
		return low
	}
	key := node{varIdx: varIdx, low: low, high: high}
	if n, ok := m.uniqueTab[key]; ok {
		return n
	}
	id := Node(len(m.nodes))
	m.nodes = append(m.nodes, key)
	m.uniqueTab[key] = id
	return id
}

func (m *Manager) get(n Node) node {
	return m.nodes[n]
}

func (m *Manager) isTerminal(n Node) bool {
	return n == nodeFalse || n == nodeTrue
}

// topVar returns the lesser variable index between a and b, treating
// terminals as having no variable (always "below" any interior node).
func (m *Manager) topVar(a, b Node) int {
	av, bv := -1, -1
	if !m.isTerminal(a) {
		av = m.get(a).varIdx
	}
	if !m.isTerminal(b) {
		bv = m.get(b).varIdx
	}
	if av == -1 {
		return bv
	}
	if bv == -1 {
		return av
	}
	if av < bv {
		return av
	}
	return bv
}

func (m *Manager) restrict(n Node, v int) (lo, hi Node) {
	if m.isTerminal(n) || m.get(n).varIdx != v {
		return n, n
	}
	nd := m.get(n)
	return nd.low, nd.high
}

const (
	opAnd byte = iota
	opOr
	opNot
)

// And returns the conjunction of a and b.
func (m *Manager) And(a, b Node) Node { return m.apply(opAnd, a, b) }

// Or returns the disjunction of a and b.
func (m *Manager) Or(a, b Node) Node { return m.apply(opOr, a, b) }

// Not returns the negation of a.
func (m *Manager) Not(a Node) Node { return m.apply(opNot, a, nodeFalse) }

func (m *Manager) apply(op byte, a, b Node) Node {
	switch op {
	case opAnd:
		if a == nodeFalse || b == nodeFalse {
			return nodeFalse
		}
		if a == nodeTrue {
			return b
		}
		if b == nodeTrue || a == b {
			return a
		}
	case opOr:
		if a == nodeTrue || b == nodeTrue {
			return nodeTrue
		}
		if a == nodeFalse {
			return b
		}
		if b == nodeFalse || a == b {
			return a
		}
	case opNot:
		if a == nodeTrue {
			return nodeFalse
		}
		if a == nodeFalse {
			return nodeTrue
		}
	}

	key := applyKey{op: op, a: a, b: b}
	if cached, ok := m.applyTab[key]; ok {
		return cached
	}

	v := m.topVar(a, b)
	aLo, aHi := m.restrict(a, v)
	bLo, bHi := m.restrict(b, v)

	lo := m.apply(op, aLo, bLo)
	hi := m.apply(op, aHi, bHi)
	result := m.makeNode(v, lo, hi)

	m.applyTab[key] = result
	return result
}

// IsFalse reports whether n is the unsatisfiable formula.
func (m *Manager) IsFalse(n Node) bool { return n == nodeFalse }

// Implies reports whether a ⇒ b, computed as IsFalse(a ∧ ¬b).
func (m *Manager) Implies(a, b Node) bool {
	return m.IsFalse(m.And(a, m.Not(b)))
}

// String renders n for debugging.
func (m *Manager) String(n Node) string {
	if n == nodeFalse {
		return "false"
	}
	if n == nodeTrue {
		return "true"
	}
	nd := m.get(n)
	return fmt.Sprintf("(%s ? %s : %s)", m.varNames[nd.varIdx], m.String(nd.high), m.String(nd.low))
}
