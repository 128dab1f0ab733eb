package goldengine

import (
	"strings"
	"testing"

	"github.com/dfreuden/goldengine/egt"
)

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("Expected span (3…7) with length 4, got %v", s)
	}
	if s.IsNull() {
		t.Errorf("Expected span not to be null")
	}
	e := s.Extend(Span{1, 5})
	if e != (Span{1, 7}) {
		t.Errorf("Expected extended span (1…7), got %v", e)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Col: 14}
	if p.String() != "(3,14)" {
		t.Errorf("Expected position string (3,14), got %s", p)
	}
	if StartOfInput() != (Position{Line: 1, Col: 1}) {
		t.Errorf("Expected input to start at (1,1)")
	}
}

func TestReductionTreeString(t *testing.T) {
	e := &egt.Symbol{Index: 0, Name: "E", Kind: egt.SymbolNonterminal}
	id := &egt.Symbol{Index: 1, Name: "id", Kind: egt.SymbolTerminal}
	plus := &egt.Symbol{Index: 2, Name: "+", Kind: egt.SymbolTerminal}
	sum := &egt.Rule{Index: 0, Head: e, Body: []*egt.Symbol{e, plus, e}}
	operand := &egt.Rule{Index: 1, Head: e, Body: []*egt.Symbol{id}}

	leaf := func(text string) *Token {
		return &Token{
			Symbol:    e,
			Reduction: &Reduction{Rule: operand, Tokens: []*Token{{Symbol: id, Text: text}}},
		}
	}
	root := &Reduction{
		Rule: sum,
		Tokens: []*Token{
			leaf("a"),
			{Symbol: plus, Text: "+"},
			leaf("b"),
		},
	}
	rendering := root.TreeString()
	lines := strings.Split(strings.TrimRight(rendering, "\n"), "\n")
	want := []string{
		"<E> ::= <E> '+' <E>",
		"  <E> ::= id",
		`    'id' "a"`,
		`  '+' "+"`,
		"  <E> ::= id",
		`    'id' "b"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(want), len(lines), rendering)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestTokenKind(t *testing.T) {
	tok := &Token{Symbol: &egt.Symbol{Name: "x", Kind: egt.SymbolTerminal}}
	if tok.Kind() != egt.SymbolTerminal {
		t.Errorf("Expected terminal kind, got %v", tok.Kind())
	}
	var sentinel Token
	if sentinel.Kind() != egt.SymbolError {
		t.Errorf("Expected a symbol-less token to report the error kind")
	}
}
