package parser

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dfreuden/goldengine"
	"github.com/dfreuden/goldengine/egt"
	"github.com/dfreuden/goldengine/egt/egtest"
)

// drive collects events until the first terminal event (inclusive).
func drive(p *Parser) []Event {
	var events []Event
	for {
		ev := p.Step()
		events = append(events, ev)
		if ev.Terminal() || ev.Kind == Empty {
			return events
		}
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func expectKinds(t *testing.T, events []Event, want ...EventKind) {
	t.Helper()
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event #%d: expected %v, got %v (all: %v)", i, want[i], got[i], got)
		}
	}
}

// reducedRules returns the rule index of every Reduction event, in order.
func reducedRules(events []Event) []int {
	var rules []int
	for _, ev := range events {
		if ev.Kind == Reduction {
			rules = append(rules, ev.Reduction.Rule.Index)
		}
	}
	return rules
}

func TestParseSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Slice(), "aaa")
	events := drive(p)
	expectKinds(t, events,
		TokenRead, TokenRead, Reduction, TokenRead, Reduction, Reduction, Accept)
	want := []int{0, 1, 1} // S ::= a, then twice S ::= S a
	got := reducedRules(events)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reduction #%d: expected rule %d, got %d", i, want[i], got[i])
		}
	}
	if p.Root() == nil || p.Root().Rule.Index != 1 {
		t.Errorf("Expected root reduction with rule 1, got %v", p.Root())
	}
}

func TestParseExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "id+id")
	events := drive(p)
	expectKinds(t, events,
		TokenRead, TokenRead, Reduction, TokenRead, Reduction, Reduction, Accept)
	want := []int{2, 2, 0} // E ::= id twice, then E ::= E + E
	got := reducedRules(events)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reduction #%d: expected rule %d, got %d", i, want[i], got[i])
		}
	}
}

func TestParseNoiseDiscarded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "  id  ")
	events := drive(p)
	// whitespace tokens are read (and reported) but never reach the tables
	expectKinds(t, events, TokenRead, TokenRead, TokenRead, Reduction, Accept)
	if p.Root() == nil || p.Root().Rule.Index != 2 {
		t.Errorf("Expected the input to parse as a bare id")
	}
}

func TestParseReductionBodyLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "(id+id)+id")
	for _, ev := range drive(p) {
		if ev.Kind != Reduction {
			continue
		}
		if len(ev.Reduction.Tokens) != len(ev.Reduction.Rule.Body) {
			t.Errorf("rule %v: body length %d, reduction carries %d tokens",
				ev.Reduction.Rule, len(ev.Reduction.Rule.Body), len(ev.Reduction.Tokens))
		}
	}
}

// Concatenating the terminal leaves of the accepted tree in pre-order
// equals the consumed input with the noise removed.
func TestParseLeafConcatenation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), " ( id + id ) + id ")
	events := drive(p)
	if events[len(events)-1].Kind != Accept {
		t.Fatalf("Expected the input to be accepted, got %v", events[len(events)-1])
	}
	var leaves strings.Builder
	var walk func(r *goldengine.Reduction)
	walk = func(r *goldengine.Reduction) {
		for _, tok := range r.Tokens {
			if tok.Reduction != nil {
				walk(tok.Reduction)
				continue
			}
			leaves.WriteString(tok.Text)
		}
	}
	walk(p.Root())
	if leaves.String() != "(id+id)+id" {
		t.Errorf("Expected leaves to concatenate to %q, got %q", "(id+id)+id", leaves.String())
	}
}

func TestParseLexicalError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "@")
	ev := p.Run()
	if ev.Kind != LexicalError {
		t.Fatalf("Expected a lexical error, got %v", ev)
	}
	if ev.Pos != goldengine.StartOfInput() {
		t.Errorf("Expected the error at (1,1), got %v", ev.Pos)
	}
	if ev.Token == nil || ev.Token.Text != "@" {
		t.Errorf("Expected the error token to carry %q", "@")
	}
}

func TestParseSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "(")
	ev := p.Run()
	if ev.Kind != SyntaxError {
		t.Fatalf("Expected a syntax error, got %v", ev)
	}
	if ev.Pos != (goldengine.Position{Line: 1, Col: 2}) {
		t.Errorf("Expected the error at (1,2), got %v", ev.Pos)
	}
	if len(ev.Expected) != 2 {
		t.Fatalf("Expected two expected symbols, got %v", ev.Expected)
	}
	if ev.Expected[0].Name != "id" || ev.Expected[1].Name != "(" {
		t.Errorf("Expected the expected-set [id, '('], got %v", ev.Expected)
	}
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "")
	ev := p.Run()
	// the grammar does not derive epsilon, so empty input is a syntax error
	if ev.Kind != SyntaxError {
		t.Fatalf("Expected a syntax error on empty input, got %v", ev)
	}
	if ev.Pos != goldengine.StartOfInput() {
		t.Errorf("Expected the error at (1,1), got %v", ev.Pos)
	}
}

func TestParseGroupError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Comments(), "id /* never closed")
	ev := p.Run()
	if ev.Kind != GroupError {
		t.Fatalf("Expected a group error, got %v", ev)
	}
	if ev.Pos.Line != 1 || ev.Pos.Col != 19 {
		t.Errorf("Expected the error at end of input (1,19), got %v", ev.Pos)
	}
}

func TestParseComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Comments(), "/* outer /* inner */ still outer */ id")
	events := drive(p)
	// one comment token, one whitespace token, one id, then accept
	expectKinds(t, events, TokenRead, TokenRead, TokenRead, Reduction, Accept)
	if events[0].Token.Kind() != egt.SymbolNoise {
		t.Errorf("Expected the comment to be read as noise")
	}
}

func TestParseNotLoaded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := New(egtest.Expr())
	if ev := p.Step(); ev.Kind != NotLoaded {
		t.Fatalf("Expected NotLoaded before a source is attached, got %v", ev)
	}
	p.LoadSource("id")
	if ev := p.Run(); ev.Kind != Accept {
		t.Errorf("Expected the parse to work after LoadSource, got %v", ev)
	}
}

func TestParseTrimReductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Chain(), "x", TrimReductions(true))
	events := drive(p)
	expectKinds(t, events, TokenRead, Reduction, Reduction, Reduction, Accept)
	if events[1].Trimmed {
		t.Errorf("Expected C ::= 'x' not to be trimmed")
	}
	if !events[2].Trimmed || !events[3].Trimmed {
		t.Errorf("Expected the wrapper rules to be trimmed")
	}
	// the root is the reduction of the terminal rule; no wrappers survive
	root := p.Root()
	if root == nil || root.Rule.Index != 2 {
		t.Fatalf("Expected root reduction C ::= 'x', got %v", root)
	}
	if len(root.Tokens) != 1 || root.Tokens[0].Text != "x" {
		t.Errorf("Expected the root to hold the terminal 'x'")
	}
}

func TestParseChainUntrimmed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Chain(), "x")
	events := drive(p)
	expectKinds(t, events, TokenRead, Reduction, Reduction, Reduction, Accept)
	for _, ev := range events {
		if ev.Kind == Reduction && ev.Trimmed {
			t.Errorf("Expected no trimming by default")
		}
	}
	root := p.Root()
	if root == nil || root.Rule.Index != 0 {
		t.Fatalf("Expected root reduction A ::= B, got %v", root)
	}
}

func TestParseResetReplays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Slice(), "a aa")
	first := drive(p)
	p.Reset()
	if p.CurrentPosition() != goldengine.StartOfInput() {
		t.Errorf("Expected position (1,1) after reset, got %v", p.CurrentPosition())
	}
	if p.CurrentToken() != nil {
		t.Errorf("Expected no pending token after reset")
	}
	second := drive(p)
	if len(first) != len(second) {
		t.Fatalf("Expected replay to produce %d events, got %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind {
			t.Errorf("event #%d: %v then %v", i, first[i].Kind, second[i].Kind)
		}
		if first[i].Kind == TokenRead && first[i].Token.Text != second[i].Token.Text {
			t.Errorf("event #%d: token %q then %q", i,
				first[i].Token.Text, second[i].Token.Text)
		}
	}
}

func TestParseStepAfterAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Slice(), "a")
	if ev := p.Run(); ev.Kind != Accept {
		t.Fatalf("Expected accept, got %v", ev)
	}
	if ev := p.Step(); ev.Kind != Empty {
		t.Errorf("Expected Empty after accept, got %v", ev)
	}
}

func TestSetCurrentReduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Slice(), "a")
	var replacement *goldengine.Reduction
	for {
		ev := p.Step()
		if ev.Kind == Reduction && replacement == nil {
			if p.CurrentReduction() != ev.Reduction {
				t.Errorf("Expected CurrentReduction to be the event's reduction")
			}
			replacement = &goldengine.Reduction{Rule: ev.Reduction.Rule}
			p.SetCurrentReduction(replacement)
		}
		if ev.Terminal() {
			if ev.Kind != Accept {
				t.Fatalf("Expected accept, got %v", ev)
			}
			break
		}
	}
	if p.Root() != replacement {
		t.Errorf("Expected the replaced reduction to become the root")
	}
}

// A table with a reachable reduce but no Goto entry for the rule's head is
// inconsistent and must surface as InternalError, not as a panic.
func TestParseInternalError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	f := egtest.NewFile()
	f.Counts(4, 1, 1, 2, 2, 0)
	f.CharSet(0, 0, [2]int{'x', 'x'})
	f.Symbol(0, "EOF", egt.SymbolEOF)
	f.Symbol(1, "Error", egt.SymbolError)
	f.Symbol(2, "x", egt.SymbolTerminal)
	f.Symbol(3, "S", egt.SymbolNonterminal)
	f.Rule(0, 3, 2)
	f.Initial(0, 0)
	f.DFA(0, -1, [2]int{0, 1})
	f.DFA(1, 2)
	f.LALR(0, egtest.Shift(2, 1)) // no Goto for S
	f.LALR(1, egtest.Reduce(0, 0))
	g, err := egt.Load(f.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	p := NewWithSource(g, "x")
	ev := p.Run()
	if ev.Kind != InternalError {
		t.Fatalf("Expected InternalError for the missing Goto, got %v", ev)
	}
}

func TestExpectedSymbolsAreShiftsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.parser")
	defer teardown()
	//
	p := NewWithSource(egtest.Expr(), "id id")
	ev := p.Run()
	if ev.Kind != SyntaxError {
		t.Fatalf("Expected a syntax error, got %v", ev)
	}
	for _, sym := range ev.Expected {
		if sym.Kind == egt.SymbolNonterminal {
			t.Errorf("Expected only shiftable terminals, got %v", sym)
		}
	}
}
