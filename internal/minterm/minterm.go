package minterm

import (
	"fmt"

	"github.com/dekarrin/gomata/internal/automaton/aerr"
	"github.com/dekarrin/gomata/internal/ir"
	"github.com/dekarrin/gomata/internal/matlog"
)

// Partition computes the minterm partition of bdds: start with {True()}; for
// each transition BDD b, replace each element m of the current set with
// {m∧b, m∧¬b}, discarding unsatisfiable results. The returned slice is the
// set of satisfiable minterms, each a maximal conjunction picking, for every
// original BDD, either it or its complement.
func Partition(alg BooleanAlgebra, bdds []Node) []Node {
	minterms := []Node{alg.True()}
	for _, b := range bdds {
		var next []Node
		notB := alg.Not(b)
		for _, m := range minterms {
			if pos := alg.And(m, b); !alg.IsFalse(pos) {
				next = append(next, pos)
			}
			if neg := alg.And(m, notB); !alg.IsFalse(neg) {
				next = append(next, neg)
			}
		}
		minterms = next
	}
	return minterms
}

// translateSymbolFormula translates a formula graph containing only symbol
// operands, Boolean constants, and NEG/AND/OR operators into a BDD.
func translateSymbolFormula(f *ir.FormulaNode, alg BooleanAlgebra) (Node, error) {
	if f == nil {
		return alg.True(), nil
	}
	if f.IsOperator {
		switch f.Operator {
		case ir.OperatorNeg:
			if len(f.Children) != 1 {
				return 0, aerr.New("NEG formula node must have exactly one child", aerr.ErrMalformedInput)
			}
			c, err := translateSymbolFormula(f.Children[0], alg)
			if err != nil {
				return 0, err
			}
			return alg.Not(c), nil
		case ir.OperatorAnd:
			acc := alg.True()
			for _, c := range f.Children {
				n, err := translateSymbolFormula(c, alg)
				if err != nil {
					return 0, err
				}
				acc = alg.And(acc, n)
			}
			return acc, nil
		case ir.OperatorOr:
			acc := alg.False()
			for _, c := range f.Children {
				n, err := translateSymbolFormula(c, alg)
				if err != nil {
					return 0, err
				}
				acc = alg.Or(acc, n)
			}
			return acc, nil
		default:
			return 0, aerr.New("unrecognized operator in symbol formula", aerr.ErrMalformedInput)
		}
	}
	switch {
	case f.IsSymbol():
		return alg.Var(f.Name), nil
	case f.Operand == ir.OperandConstantTrue:
		return alg.True(), nil
	case f.Operand == ir.OperandConstantFalse:
		return alg.False(), nil
	default:
		return 0, aerr.New(fmt.Sprintf("unexpected operand in symbol formula: %q", f.Name), aerr.ErrMalformedInput)
	}
}

// containsState reports whether f references any state operand anywhere in
// its subtree.
func containsState(f *ir.FormulaNode) bool {
	if f == nil {
		return false
	}
	if !f.IsOperator {
		return f.IsState()
	}
	for _, c := range f.Children {
		if containsState(c) {
			return true
		}
	}
	return false
}

// splitStateConjuncts separates an AFA transition formula into its symbol
// part (mintermized) and its state part (kept literal), per the structural
// walk DESIGN NOTES describes: flatten a top-level AND chain, and route any
// conjunct that references a state anywhere in its subtree into the state
// part verbatim; everything else joins the symbol part. A formula with no
// top-level AND (e.g. a bare symbol, or an OR of pure-symbol disjuncts) is
// entirely symbol part.
func splitStateConjuncts(f *ir.FormulaNode) (symbolPart *ir.FormulaNode, stateConjuncts []*ir.FormulaNode) {
	var conjuncts []*ir.FormulaNode
	if f.IsOperator && f.Operator == ir.OperatorAnd {
		conjuncts = f.Children
	} else {
		conjuncts = []*ir.FormulaNode{f}
	}

	var symParts []*ir.FormulaNode
	for _, c := range conjuncts {
		if containsState(c) {
			stateConjuncts = append(stateConjuncts, c)
		} else {
			symParts = append(symParts, c)
		}
	}

	switch len(symParts) {
	case 0:
		symbolPart = &ir.FormulaNode{Name: "true", Operand: ir.OperandConstantTrue}
	case 1:
		symbolPart = symParts[0]
	default:
		symbolPart = &ir.FormulaNode{IsOperator: true, Operator: ir.OperatorAnd, Children: symParts}
	}
	return symbolPart, stateConjuncts
}

// Mintermize converts ia, whose alphabet is AlphabetBitVector, into an
// equivalent IntermediateAutomaton over a fresh explicit alphabet: every
// transition's symbol part (possibly preceded by separating out its state
// conjuncts, for an AFA section) is translated to a BDD, the minterm
// partition of the collected BDDs, minus the minterms that imply no
// transition's symbol part, becomes the new symbol set, and each
// original transition is re-emitted once per minterm that implies its
// formula. The BDD manager is scoped to this call: acquired up front and
// Closed via defer before return, tagged with a session-correlated logger so
// concurrent mintermization calls are distinguishable in logs.
func Mintermize(ia *ir.IntermediateAutomaton, logger *matlog.Logger) (*ir.IntermediateAutomaton, error) {
	if ia.Alphabet != ir.AlphabetBitVector {
		return nil, aerr.New("Mintermize requires an AlphabetBitVector section", aerr.ErrPrecondition)
	}

	sessionLog := logger
	if sessionLog != nil {
		sessionLog = sessionLog.WithSession()
		sessionLog.Infof(matlog.Fields{"transitions": len(ia.Transitions)}, "mintermize: starting")
	}

	mgr := NewManager()
	defer mgr.Close()

	type entry struct {
		lhs        string
		symbolBDD  Node
		stateParts []*ir.FormulaNode
	}
	entries := make([]entry, len(ia.Transitions))
	bdds := make([]Node, len(ia.Transitions))

	for i, t := range ia.Transitions {
		var symForm *ir.FormulaNode
		var stateParts []*ir.FormulaNode
		if ia.Kind == ir.KindAFA {
			symForm, stateParts = splitStateConjuncts(t.Formula)
		} else {
			symForm = t.Formula
		}
		b, err := translateSymbolFormula(symForm, mgr)
		if err != nil {
			return nil, fmt.Errorf("transition from %q: %w", t.LHS, err)
		}
		entries[i] = entry{lhs: t.LHS, symbolBDD: b, stateParts: stateParts}
		bdds[i] = b
	}

	minterms := Partition(mgr, bdds)
	// drop minterms that imply no transition's symbol part: they would label
	// no transition
	used := minterms[:0]
	for _, m := range minterms {
		for _, b := range bdds {
			if mgr.Implies(m, b) {
				used = append(used, m)
				break
			}
		}
	}
	minterms = used
	if sessionLog != nil {
		sessionLog.Infof(matlog.Fields{"minterms": len(minterms)}, "mintermize: partitioned")
	}

	out := &ir.IntermediateAutomaton{
		Kind:           ia.Kind,
		StateNaming:    ia.StateNaming,
		SymbolNaming:   ir.NamingEnum,
		NodeNaming:     ia.NodeNaming,
		Alphabet:       ir.AlphabetExplicit,
		StateNames:     ia.StateNames,
		NodeNames:      ia.NodeNames,
		InitialFormula: ia.InitialFormula,
		FinalFormula:   ia.FinalFormula,
	}

	mintermNames := make([]string, len(minterms))
	for i := range minterms {
		mintermNames[i] = fmt.Sprintf("m%d", i)
	}
	out.SymbolNames = mintermNames

	for _, e := range entries {
		for mi, m := range minterms {
			if !mgr.Implies(m, e.symbolBDD) {
				continue
			}
			symNode := &ir.FormulaNode{Name: mintermNames[mi], Operand: ir.OperandSymbol}
			formula := symNode
			if len(e.stateParts) > 0 {
				children := append([]*ir.FormulaNode{symNode}, e.stateParts...)
				formula = &ir.FormulaNode{IsOperator: true, Operator: ir.OperatorAnd, Children: children}
			}
			out.Transitions = append(out.Transitions, ir.Transition{LHS: e.lhs, Formula: formula})
		}
	}

	return out, nil
}
