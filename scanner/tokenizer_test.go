package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dfreuden/goldengine"
	"github.com/dfreuden/goldengine/egt"
	"github.com/dfreuden/goldengine/egt/egtest"
)

func tokenize(g *egt.Grammar, input string) []*goldengine.Token {
	t := New(g, NewReader(input))
	var tokens []*goldengine.Token
	for {
		tok := t.Next()
		tokens = append(tokens, tok)
		if tok.Kind() == egt.SymbolEOF {
			return tokens
		}
	}
}

func texts(tokens []*goldengine.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func expectTokens(t *testing.T, tokens []*goldengine.Token, want ...string) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens %q, got %d: %q", len(want), want,
			len(tokens), texts(tokens))
	}
	for i, text := range want {
		if tokens[i].Text != text {
			t.Errorf("token #%d: expected %q, got %q", i, text, tokens[i].Text)
		}
	}
}

func TestTokenizeLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Expr()
	tokens := tokenize(g, "abc+de")
	expectTokens(t, tokens, "abc", "+", "de", "")
	if tokens[0].Symbol.Name != "id" {
		t.Errorf("Expected first token to be an id, got %v", tokens[0].Symbol)
	}
	if tokens[1].Symbol.Name != "+" {
		t.Errorf("Expected second token to be '+', got %v", tokens[1].Symbol)
	}
}

func TestTokenizePositionsAndSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Expr()
	tokens := tokenize(g, "ab (c)")
	wantPos := []goldengine.Position{
		{Line: 1, Col: 1}, // ab
		{Line: 1, Col: 3}, // space
		{Line: 1, Col: 4}, // (
		{Line: 1, Col: 5}, // c
		{Line: 1, Col: 6}, // )
		{Line: 1, Col: 7}, // EOF
	}
	for i, pos := range wantPos {
		if tokens[i].Pos != pos {
			t.Errorf("token #%d %q: expected position %v, got %v",
				i, tokens[i].Text, pos, tokens[i].Pos)
		}
	}
	if tokens[0].Span != (goldengine.Span{0, 2}) {
		t.Errorf("Expected span (0…2) for first token, got %v", tokens[0].Span)
	}
}

func TestTokenizeNoise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Expr()
	tokens := tokenize(g, "  id  ")
	expectTokens(t, tokens, "  ", "id", "  ", "")
	if tokens[0].Kind() != egt.SymbolNoise {
		t.Errorf("Expected whitespace to be noise, got %v", tokens[0].Kind())
	}
}

func TestTokenizeError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Expr()
	tok := New(g, NewReader("@id")).Next()
	if tok.Kind() != egt.SymbolError {
		t.Fatalf("Expected an error token, got %v", tok.Symbol)
	}
	if tok.Text != "@" {
		t.Errorf("Expected error token text %q, got %q", "@", tok.Text)
	}
	if tok.Pos != goldengine.StartOfInput() {
		t.Errorf("Expected error token at (1,1), got %v", tok.Pos)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Expr()
	tok := New(g, NewReader("")).Next()
	if tok.Kind() != egt.SymbolEOF {
		t.Fatalf("Expected EOF on empty input, got %v", tok.Symbol)
	}
	if tok.Pos != goldengine.StartOfInput() {
		t.Errorf("Expected EOF at (1,1), got %v", tok.Pos)
	}
}

// The first matching edge wins, even if a later edge with a larger
// character set would match as well.
func TestTokenizeFirstEdgeWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	f := egtest.NewFile()
	f.Counts(4, 2, 0, 3, 1, 0)
	f.CharSet(0, 0, [2]int{'a', 'a'})
	f.CharSet(1, 0, [2]int{'a', 'z'})
	f.Symbol(0, "EOF", egt.SymbolEOF)
	f.Symbol(1, "Error", egt.SymbolError)
	f.Symbol(2, "first", egt.SymbolTerminal)
	f.Symbol(3, "second", egt.SymbolTerminal)
	f.Initial(0, 0)
	// both edges cover 'a'; the first one must win
	f.DFA(0, -1, [2]int{0, 1}, [2]int{1, 2})
	f.DFA(1, 2)
	f.DFA(2, 3)
	f.LALR(0)
	g, err := egt.Load(f.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	tok := New(g, NewReader("a")).Next()
	if tok.Symbol.Name != "first" {
		t.Errorf("Expected the first edge to win, got symbol %v", tok.Symbol)
	}
	tok = New(g, NewReader("q")).Next()
	if tok.Symbol.Name != "second" {
		t.Errorf("Expected the second edge to match 'q', got %v", tok.Symbol)
	}
}

func TestTokenizeNestedBlockComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Comments()
	tokens := tokenize(g, "/* outer /* inner */ still outer */ id")
	expectTokens(t, tokens, "/* outer /* inner */ still outer */", " ", "id", "")
	if tokens[0].Symbol.Name != "Comment" {
		t.Errorf("Expected the group's container symbol, got %v", tokens[0].Symbol)
	}
	if tokens[0].Kind() != egt.SymbolNoise {
		t.Errorf("Expected the comment token to be noise")
	}
	if tokens[0].Pos != goldengine.StartOfInput() {
		t.Errorf("Expected the comment to start at (1,1), got %v", tokens[0].Pos)
	}
}

func TestTokenizeLineCommentOpenEnding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Comments()
	tokens := tokenize(g, "-- a note\nid")
	// the newline ends the comment but stays on the input (open ending)
	expectTokens(t, tokens, "-- a note", "\n", "id", "")
	if tokens[0].Symbol.Name != "LineComment" {
		t.Errorf("Expected the line-comment container, got %v", tokens[0].Symbol)
	}
	if tokens[1].Symbol.Name != "NewLine" {
		t.Errorf("Expected the newline to be re-read, got %v", tokens[1].Symbol)
	}
}

func TestTokenizeGroupInsideLineComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Comments()
	// line comments permit no nesting: '/*' is swallowed as plain text
	tokens := tokenize(g, "-- see /* below\nid")
	expectTokens(t, tokens, "-- see /* below", "\n", "id", "")
}

func TestTokenizeRunawayGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Comments()
	tk := New(g, NewReader("id /* no end"))
	tok := tk.Next()
	if tok.Text != "id" {
		t.Fatalf("Expected an id token first, got %q", tok.Text)
	}
	tok = tk.Next() // whitespace
	tok = tk.Next() // runs into the open group
	if tok.Kind() != egt.SymbolEOF {
		t.Fatalf("Expected EOF inside the open group, got %v", tok.Symbol)
	}
	if tk.GroupDepth() != 1 {
		t.Errorf("Expected one open group at EOF, got %d", tk.GroupDepth())
	}
}

func TestTokenizerReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goldengine.scanner")
	defer teardown()
	//
	g := egtest.Comments()
	r := NewReader("/* open")
	tk := New(g, r)
	tk.Next()
	if tk.GroupDepth() != 1 {
		t.Fatalf("Expected an open group")
	}
	tk.Reset()
	r.Reset()
	if tk.GroupDepth() != 0 {
		t.Errorf("Expected no open groups after reset")
	}
}
