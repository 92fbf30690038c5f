package main

import (
	"fmt"

	"github.com/dekarrin/gomata/internal/automaton"
	"github.com/dekarrin/gomata/internal/ir"
	"github.com/dekarrin/gomata/internal/matlog"
	"github.com/dekarrin/gomata/internal/minterm"
)

// examples maps an -e/--example selector to the function that runs it.
// Each mirrors one of original_source/examples/exampleNN-*.cc against this
// module's API.
var examples = map[string]func() error{
	"simple":      exampleSimple,
	"determinize": exampleDeterminize,
	"complement":  exampleComplement,
	"empty":       exampleEmpty,
	"mintermize":  exampleMintermize,
	"noodlify":    exampleNoodlify,
}

// exampleSimple builds a tiny two-transition NFA and dumps it, mirroring
// example01-simple.cc.
func exampleSimple() error {
	alphabet := automaton.NewIntAlphabet(2)
	a := automaton.New(alphabet)
	for i := 0; i < 5; i++ {
		a.AddState()
	}
	a.SetInitial(1)
	a.SetInitial(2)
	a.SetFinal(3)
	a.SetFinal(4)
	a.AddTransition(1, 0, 3)
	a.AddTransition(2, 1, 4)

	fmt.Println(a.Dump())
	return nil
}

// exampleDeterminize builds a small nondeterministic automaton and prints
// both it and its determinization, mirroring example02-determinize.cc.
func exampleDeterminize() error {
	alphabet := automaton.NewIntAlphabet(2)
	a := automaton.New(alphabet)
	for i := 0; i < 3; i++ {
		a.AddState()
	}
	a.SetInitial(0)
	a.SetFinal(2)
	a.AddTransition(0, 0, 0)
	a.AddTransition(0, 0, 1)
	a.AddTransition(1, 1, 2)
	a.AddTransition(0, 1, 2)

	fmt.Println("nondeterministic:")
	fmt.Println(a.Dump())

	det := automaton.Determinize(a, nil)
	fmt.Println("\ndeterministic:")
	fmt.Println(det.Dump())
	return nil
}

// exampleComplement builds a small automaton and prints its complement,
// mirroring example03-complement.cc / example04-complement.cc.
func exampleComplement() error {
	alphabet := automaton.NewIntAlphabet(2)
	a := automaton.New(alphabet)
	for i := 0; i < 2; i++ {
		a.AddState()
	}
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, 0, 1)

	comp := automaton.Complement(a, alphabet, automaton.ComplementOpts{})
	fmt.Println(comp.Dump())
	return nil
}

// exampleEmpty checks emptiness of a small automaton, mirroring
// example03-lang-empty.cc.
func exampleEmpty() error {
	alphabet := automaton.NewIntAlphabet(1)
	a := automaton.New(alphabet)
	s := a.AddState()
	a.SetInitial(s)

	var witness automaton.Witness
	empty := automaton.IsLangEmpty(a, &witness)
	fmt.Printf("is_lang_empty: %v\n", empty)
	return nil
}

// exampleMintermize builds a tiny bit-vector NFA section and mintermizes
// it, mirroring example06-mintermization.cc.
func exampleMintermize() error {
	xVar := &ir.FormulaNode{Name: "x", Operand: ir.OperandSymbol}
	yVar := &ir.FormulaNode{Name: "y", Operand: ir.OperandSymbol}
	notY := &ir.FormulaNode{IsOperator: true, Operator: ir.OperatorNeg, Children: []*ir.FormulaNode{yVar}}

	ia := &ir.IntermediateAutomaton{
		Kind:     ir.KindNFA,
		Alphabet: ir.AlphabetBitVector,
		Transitions: []ir.Transition{
			{LHS: "q0", Formula: &ir.FormulaNode{IsOperator: true, Operator: ir.OperatorAnd, Children: []*ir.FormulaNode{xVar, yVar}}},
			{LHS: "q0", Formula: &ir.FormulaNode{IsOperator: true, Operator: ir.OperatorAnd, Children: []*ir.FormulaNode{xVar, notY}}},
		},
	}

	explicit, err := minterm.Mintermize(ia, matlog.New())
	if err != nil {
		return err
	}
	fmt.Printf("minterms: %d\n", len(explicit.SymbolNames))
	return nil
}

// exampleNoodlify builds a two-segment ε-bridged automaton and enumerates
// its noodles, demonstrating the segmentation facility that has no direct
// original-source example counterpart.
func exampleNoodlify() error {
	alphabet := automaton.NewIntAlphabet(3)
	const eps = automaton.Symbol(2)

	a := automaton.New(alphabet)
	for i := 0; i < 4; i++ {
		a.AddState()
	}
	a.SetInitial(0)
	a.SetFinal(3)
	a.AddTransition(0, 0, 1)
	a.AddTransition(1, eps, 2)
	a.AddTransition(2, 1, 3)

	batch := automaton.Noodlify(a, eps, false)
	fmt.Printf("noodle batch %s: %d noodle(s)\n", batch.ID, len(batch.Noodles))
	return nil
}
