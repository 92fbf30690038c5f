package automaton

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dekarrin/gomata/internal/automaton/aerr"
	"github.com/dekarrin/gomata/internal/util"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Alphabet maps symbols to names and back, and knows how to enumerate and
// complement symbol sets. Two concrete variants are provided: IntAlphabet
// (identity mapping, names are the decimal form) and NamedAlphabet
// (grow-on-insert mapping from name to symbol). An Nfa holds only an
// observing reference to its Alphabet; the alphabet is never owned or
// copied by algebraic operations.
type Alphabet interface {
	// TranslateName returns the symbol for name, creating one if the
	// alphabet variant supports growth on insert.
	TranslateName(name string) (Symbol, error)

	// ReverseTranslateSymbol returns the name for sym.
	ReverseTranslateSymbol(sym Symbol) (string, error)

	// EnumerateSymbols returns every ordinary (non-epsilon) symbol known to
	// the alphabet, in a deterministic order.
	EnumerateSymbols() []Symbol

	// ComplementOfSymbolSet returns every known symbol not in syms.
	ComplementOfSymbolSet(syms *util.OrdUint32Set) []Symbol

	// NextUnusedSymbol returns a symbol not yet assigned to any name.
	NextUnusedSymbol() Symbol
}

// IntAlphabet is the identity alphabet: symbol N's name is its decimal
// form, and translating any valid decimal string back always succeeds.
// It never grows: its domain is fixed at construction.
type IntAlphabet struct {
	size Symbol // one past the largest ordinary symbol
}

// NewIntAlphabet returns an IntAlphabet over symbols [0, size).
func NewIntAlphabet(size Symbol) *IntAlphabet {
	return &IntAlphabet{size: size}
}

func (a *IntAlphabet) TranslateName(name string) (Symbol, error) {
	n, err := strconv.ParseUint(name, 10, 32)
	if err != nil {
		return 0, aerr.New(fmt.Sprintf("not a valid integer symbol name: %q", name), aerr.ErrMalformedInput)
	}
	sym := Symbol(n)
	if sym >= a.size {
		return 0, aerr.New(fmt.Sprintf("symbol %d outside of alphabet of size %d", sym, a.size), aerr.ErrMalformedInput)
	}
	return sym, nil
}

func (a *IntAlphabet) ReverseTranslateSymbol(sym Symbol) (string, error) {
	if sym >= a.size {
		return "", aerr.New(fmt.Sprintf("symbol %d outside of alphabet of size %d", sym, a.size), aerr.ErrMalformedInput)
	}
	return strconv.FormatUint(uint64(sym), 10), nil
}

func (a *IntAlphabet) EnumerateSymbols() []Symbol {
	out := make([]Symbol, a.size)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

func (a *IntAlphabet) ComplementOfSymbolSet(syms *util.OrdUint32Set) []Symbol {
	var out []Symbol
	for i := Symbol(0); i < a.size; i++ {
		if !syms.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

func (a *IntAlphabet) NextUnusedSymbol() Symbol {
	return a.size
}

// NamedAlphabet is a grow-on-insert mapping from name to symbol; duplicate
// names are rejected, and the next-symbol counter is maintained as
// max(existing)+1. Because TranslateName can mutate the alphabet, a
// NamedAlphabet is not safe to share across operations running
// concurrently (spec.md §5: "non-reentrant per-alphabet").
type NamedAlphabet struct {
	nameToSymbol map[string]Symbol
	symbolToName map[Symbol]string
	next         Symbol
	collator     *collate.Collator
}

// NewNamedAlphabet returns an empty NamedAlphabet.
func NewNamedAlphabet() *NamedAlphabet {
	return &NamedAlphabet{
		nameToSymbol: map[string]Symbol{},
		symbolToName: map[Symbol]string{},
		collator:     collate.New(language.Und),
	}
}

// TranslateName returns the symbol for name, assigning a fresh one if this
// is the first time name has been seen.
func (a *NamedAlphabet) TranslateName(name string) (Symbol, error) {
	if sym, ok := a.nameToSymbol[name]; ok {
		return sym, nil
	}
	sym := a.next
	a.nameToSymbol[name] = sym
	a.symbolToName[sym] = name
	a.next++
	return sym, nil
}

// Declare inserts name mapped to an explicit symbol, failing if either the
// name or the symbol is already assigned to something else (a colliding
// alphabet mapping, spec.md §7's malformed-input kind).
func (a *NamedAlphabet) Declare(name string, sym Symbol) error {
	if existing, ok := a.nameToSymbol[name]; ok {
		if existing == sym {
			return nil
		}
		return aerr.New(fmt.Sprintf("name %q already maps to symbol %d", name, existing), aerr.ErrMalformedInput)
	}
	if existing, ok := a.symbolToName[sym]; ok {
		return aerr.New(fmt.Sprintf("symbol %d already maps to name %q", sym, existing), aerr.ErrMalformedInput)
	}
	a.nameToSymbol[name] = sym
	a.symbolToName[sym] = name
	if sym >= a.next {
		a.next = sym + 1
	}
	return nil
}

func (a *NamedAlphabet) ReverseTranslateSymbol(sym Symbol) (string, error) {
	name, ok := a.symbolToName[sym]
	if !ok {
		return "", aerr.New(fmt.Sprintf("no name registered for symbol %d", sym), aerr.ErrMalformedInput)
	}
	return name, nil
}

// EnumerateSymbols returns every assigned symbol, ordered by the
// locale-aware collation of their names rather than raw numeric or byte
// order, so that textual dumps stay deterministic across naming schemes
// that mix scripts or case (spec.md §3's marker-prefixed naming discipline).
func (a *NamedAlphabet) EnumerateSymbols() []Symbol {
	names := make([]string, 0, len(a.nameToSymbol))
	for name := range a.nameToSymbol {
		names = append(names, name)
	}
	a.collator.SortStrings(names)

	out := make([]Symbol, len(names))
	for i, name := range names {
		out[i] = a.nameToSymbol[name]
	}
	return out
}

func (a *NamedAlphabet) ComplementOfSymbolSet(syms *util.OrdUint32Set) []Symbol {
	all := a.EnumerateSymbols()
	var out []Symbol
	for _, sym := range all {
		if !syms.Has(sym) {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (a *NamedAlphabet) NextUnusedSymbol() Symbol {
	return a.next
}
