package egt

import (
	"fmt"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"

	"github.com/dfreuden/goldengine/sparse"
)

// Header is the magic string opening every EGT v5.0 file.
const Header = "GOLD Parser Tables/v5.0"

// Property is a name/value pair from the grammar's property records
// (grammar name, author, generated date, …).
type Property struct {
	Index int
	Name  string
	Value string
}

// Counts holds the declared table sizes from the TableCounts record.
type Counts struct {
	Symbols    int
	CharSets   int
	Rules      int
	DFAStates  int
	LALRStates int
	Groups     int
}

func (c Counts) String() string {
	return fmt.Sprintf("%d symbols, %d charsets, %d rules, %d DFA states, %d LALR states, %d groups",
		c.Symbols, c.CharSets, c.Rules, c.DFAStates, c.LALRStates, c.Groups)
}

// Grammar is the in-memory form of an Enhanced Grammar Table: the eight
// typed tables plus the two initial-state indices. All cross-references
// inside the tables are in range after a successful Load. A Grammar is
// read-only after load and safe to share across concurrent parsers.
type Grammar struct {
	Header     string
	Properties []Property
	Counts     Counts
	CharSets   []*CharacterSet
	Symbols    *SymbolTable
	Groups     []*Group
	Rules      []*Rule
	DFAStates  []*DFAState
	LALRStates []*LALRState

	InitialDFA  int
	InitialLALR int

	properties map[string]string
	actions    *sparse.Matrix // (LALR state × symbol) → packed action
}

// Property returns the value of the named property, or the empty string.
func (g *Grammar) Property(name string) string {
	return g.properties[name]
}

// Name returns the grammar's "Name" property.
func (g *Grammar) Name() string {
	return g.Property("Name")
}

// Version returns the grammar's "Version" property.
func (g *Grammar) Version() string {
	return g.Property("Version")
}

// About returns the grammar's "About" property.
func (g *Grammar) About() string {
	return g.Property("About")
}

// SymbolByName returns the symbol with the given name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.Symbols.ByName(name)
}

// SymbolByKind returns the first symbol of the given kind, or nil. The
// tokenizer uses this for the synthetic EOF and Error symbols.
func (g *Grammar) SymbolByKind(kind SymbolKind) *Symbol {
	return g.Symbols.ByKind(kind)
}

// GroupByStart returns the lexical group opened by the given start symbol,
// or nil.
func (g *Grammar) GroupByStart(start *Symbol) *Group {
	for _, grp := range g.Groups {
		if grp.Start.Index == start.Index {
			return grp
		}
	}
	return nil
}

// Action returns the LALR action for the given state and lookahead symbol.
// It consults the sparse action index built at load time; ok is false when
// the state has no action for the symbol.
func (g *Grammar) Action(state int, sym *Symbol) (kind ActionKind, target int, ok bool) {
	packed := g.actions.Value(state, sym.Index)
	if packed == g.actions.NullValue() {
		return 0, 0, false
	}
	return ActionKind(packed >> actionKindShift), int(packed & actionTargetMask), true
}

const (
	actionKindShift  = 20
	actionTargetMask = 1<<actionKindShift - 1
)

// buildActionIndex populates the sparse (state × symbol) action matrix from
// the LALR state table. Called once at the end of Load.
func (g *Grammar) buildActionIndex() {
	g.actions = sparse.New(len(g.LALRStates), g.Symbols.Len(), sparse.DefaultNullValue)
	for _, state := range g.LALRStates {
		for _, a := range state.Actions {
			packed := int32(a.Kind)<<actionKindShift | int32(a.Target)
			g.actions.Set(state.Index, a.Symbol.Index, packed)
		}
	}
}

// Fingerprint returns an MD5 hash over the loaded tables. Two grammars with
// identical tables hash identically, which the round-trip tests rely on.
func (g *Grammar) Fingerprint() string {
	type identity struct {
		Header      string
		Properties  []Property
		Counts      Counts
		CharSets    []*CharacterSet
		Symbols     []*Symbol
		Groups      []string
		Rules       []*Rule
		DFAStates   []*DFAState
		LALRStates  []*LALRState
		InitialDFA  int
		InitialLALR int
	}
	id := identity{
		Header:      g.Header,
		Properties:  g.Properties,
		Counts:      g.Counts,
		CharSets:    g.CharSets,
		Groups:      make([]string, len(g.Groups)),
		Rules:       g.Rules,
		DFAStates:   g.DFAStates,
		LALRStates:  g.LALRStates,
		InitialDFA:  g.InitialDFA,
		InitialLALR: g.InitialLALR,
	}
	g.Symbols.Each(func(sym *Symbol) {
		id.Symbols = append(id.Symbols, sym)
	})
	for i, grp := range g.Groups {
		nested := make([]int, 0, grp.nesting.Size())
		for _, v := range grp.nesting.Values() {
			nested = append(nested, v.(int))
		}
		slices.Sort(nested)
		id.Groups[i] = fmt.Sprintf("%v nested=%v", grp, nested)
	}
	return fmt.Sprintf("%x", structhash.Md5(id, 1))
}
