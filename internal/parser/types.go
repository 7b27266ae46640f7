package parser

import "sort"

type SymbolKind int

const (
	KindNamespace SymbolKind = iota
	KindClass
	KindSystem
)

func (k SymbolKind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindClass:
		return "class"
	case KindSystem:
		return "system"
	}
	return "unknown"
}

// Symbol is a top-level declaration recovered from source text. Qualified is
// Namespace + "." + Name, except for namespace symbols where it is the
// namespace path itself.
type Symbol struct {
	Name      string
	Namespace string
	Qualified string
	Kind      SymbolKind
}

// Reference is one piece of textual evidence that From depends on To,
// located at File:Line.
type Reference struct {
	From Symbol
	To   Symbol
	Kind RelationKind
	File string // path relative to the source root
	Line int    // 1-based
}

// Using is a single using-directive with its location in the unit.
type Using struct {
	Target string
	Line   int
}

// Unit is one source file, read fully into memory.
type Unit struct {
	Path      string // path as enumerated
	RelPath   string // relative to the source root, used in reasons
	Namespace string // empty when the unit declares no namespace
	Lines     []string
	Usings    []Using
}

// Table maps short symbol names to symbols. Duplicate short names across
// files collapse to the last-seen definition; that is a documented precision
// limit of the heuristic, not an error.
type Table struct {
	ByName map[string]Symbol
}

func NewTable() *Table {
	return &Table{ByName: make(map[string]Symbol)}
}

func (t *Table) Add(sym Symbol) {
	t.ByName[sym.Name] = sym
}

func (t *Table) Len() int {
	return len(t.ByName)
}

// Symbols returns the table contents in deterministic (qualified name) order.
func (t *Table) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(t.ByName))
	for _, s := range t.ByName {
		syms = append(syms, s)
	}
	sortSymbols(syms)
	return syms
}

func sortSymbols(syms []Symbol) {
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Qualified < syms[j].Qualified
	})
}
