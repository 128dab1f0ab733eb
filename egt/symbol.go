package egt

import (
	"fmt"
	"strings"
)

// SymbolKind classifies grammar symbols. The numeric values are the wire
// values used by the EGT symbol records.
type SymbolKind uint16

const (
	SymbolNonterminal SymbolKind = iota // normal nonterminal
	SymbolTerminal                      // normal terminal, passed to the parser
	SymbolNoise                         // ignored by the parser: whitespace, comments
	SymbolEOF                           // synthetic end-of-input terminal
	SymbolGroupStart                    // lexical group start
	SymbolGroupEnd                      // lexical group end
	SymbolDeprecated                    // COMMENT_LINE in the old CGT format, unused in EGT
	SymbolError                         // produced when the DFA cannot match
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolNonterminal:
		return "Nonterminal"
	case SymbolTerminal:
		return "Terminal"
	case SymbolNoise:
		return "Noise"
	case SymbolEOF:
		return "EOF"
	case SymbolGroupStart:
		return "GroupStart"
	case SymbolGroupEnd:
		return "GroupEnd"
	case SymbolDeprecated:
		return "Deprecated"
	case SymbolError:
		return "Error"
	}
	return fmt.Sprintf("SymbolKind(%d)", uint16(k))
}

// Symbol is a grammar symbol: a stable table index, a name, and a kind.
// Symbols are created during table load and never mutated; they are
// value-equatable by (index, name, kind).
type Symbol struct {
	Index int
	Name  string
	Kind  SymbolKind
}

// quoteChars are pattern metacharacters; terminal names containing one of
// them (or whitespace) are quoted when printed as part of a rule handle.
const quoteChars = `|+*?()[]{}<>!`

// String returns the textual form of the symbol:
// <Name> for nonterminals, 'Name' for terminals, (Name) otherwise.
func (s *Symbol) String() string {
	if s == nil {
		return "(nil)"
	}
	switch s.Kind {
	case SymbolNonterminal:
		return "<" + s.Name + ">"
	case SymbolTerminal:
		return "'" + s.Name + "'"
	}
	return "(" + s.Name + ")"
}

// Handle returns the symbol as it appears in a Backus-Naur handle. Terminals
// with plain identifier names stay bare; everything else formats as String.
func (s *Symbol) Handle() string {
	if s.Kind == SymbolTerminal {
		if strings.ContainsAny(s.Name, quoteChars+" \t") {
			return "'" + s.Name + "'"
		}
		return s.Name
	}
	return s.String()
}

// SymbolTable is the indexed symbol store of a grammar. Lookup by name is
// backed by a map built during load.
type SymbolTable struct {
	symbols []*Symbol
	byName  map[string]*Symbol
}

func newSymbolTable(size int) *SymbolTable {
	return &SymbolTable{
		symbols: make([]*Symbol, size),
		byName:  make(map[string]*Symbol, size),
	}
}

// Len returns the declared size of the table.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// Get returns the symbol at the given table index, or nil.
func (t *SymbolTable) Get(index int) *Symbol {
	if index < 0 || index >= len(t.symbols) {
		return nil
	}
	return t.symbols[index]
}

// ByName returns the symbol with the given name, or nil.
func (t *SymbolTable) ByName(name string) *Symbol {
	return t.byName[name]
}

// ByKind returns the first symbol of the given kind, in table order, or nil.
func (t *SymbolTable) ByKind(kind SymbolKind) *Symbol {
	for _, sym := range t.symbols {
		if sym != nil && sym.Kind == kind {
			return sym
		}
	}
	return nil
}

// Each calls f for every populated symbol, in table order.
func (t *SymbolTable) Each(f func(*Symbol)) {
	for _, sym := range t.symbols {
		if sym != nil {
			f(sym)
		}
	}
}

func (t *SymbolTable) add(sym *Symbol) {
	t.symbols[sym.Index] = sym
	t.byName[sym.Name] = sym
}

func (t *SymbolTable) populated() int {
	n := 0
	for _, sym := range t.symbols {
		if sym != nil {
			n++
		}
	}
	return n
}
