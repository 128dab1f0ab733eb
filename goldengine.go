package goldengine

import (
	"fmt"
	"strings"

	"github.com/dfreuden/goldengine/egt"
)

// --- Source positions ------------------------------------------------------

// Position is a line/column position in the source text. Both components are
// 1-based; the first character of the input is at (1,1).
type Position struct {
	Line int
	Col  int
}

// StartOfInput is the position of the first input character.
func StartOfInput() Position {
	return Position{Line: 1, Col: 1}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Col)
}

// --- Spans -----------------------------------------------------------------

// Span captures a run of input characters as absolute rune offsets: a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Tokens ----------------------------------------------------------------

// Token is a piece of input text classified by a grammar symbol. Terminal
// tokens are produced by the tokenizer; nonterminal tokens are created by the
// parser when a rule is reduced and then carry the reduction.
type Token struct {
	Symbol    *egt.Symbol // parent symbol, never nil for tokenizer output
	Text      string      // lexeme as it appeared in the input
	Pos       Position    // line/column of the first character
	Span      Span        // absolute rune offsets covered by the lexeme
	State     int         // LALR state at the time this token was shifted
	Reduction *Reduction  // non-nil only for nonterminal tokens
}

// Kind returns the symbol kind of the token's parent symbol.
func (t *Token) Kind() egt.SymbolKind {
	if t.Symbol == nil {
		return egt.SymbolError
	}
	return t.Symbol.Kind
}

func (t *Token) String() string {
	if t.Symbol != nil && t.Symbol.Kind == egt.SymbolNonterminal {
		return t.Symbol.String()
	}
	return fmt.Sprintf("%s %q", t.Symbol, t.Text)
}

// --- Reductions ------------------------------------------------------------

// Reduction is the result of a reduce action: a grammar rule together with
// the tokens that formed the rule's body, in body order. It is created once
// per reduce and never mutated by the parser; embedders may replace it
// wholesale (see parser.SetCurrentReduction).
type Reduction struct {
	Rule   *egt.Rule
	Tokens []*Token
}

func (r *Reduction) String() string {
	if r == nil {
		return "<no reduction>"
	}
	return r.Rule.String()
}

// TreeString renders the reduction tree in pre-order with two-space
// indentation. Inner nodes print as the rule's BNF, leaves as the symbol
// form followed by the lexeme.
func (r *Reduction) TreeString() string {
	var b strings.Builder
	r.writeTree(&b, 0)
	return b.String()
}

func (r *Reduction) writeTree(b *strings.Builder, level int) {
	indent := strings.Repeat("  ", level)
	b.WriteString(indent)
	b.WriteString(r.Rule.String())
	b.WriteString("\n")
	for _, tok := range r.Tokens {
		if tok.Reduction != nil {
			tok.Reduction.writeTree(b, level+1)
			continue
		}
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(tok.Symbol.String())
		if tok.Text != "" {
			fmt.Fprintf(b, " %q", tok.Text)
		}
		b.WriteString("\n")
	}
}
