package scanner

import (
	"github.com/dfreuden/goldengine"
	"github.com/dfreuden/goldengine/egt"
)

// Tokenizer is the DFA driver. Every call to Next produces exactly one
// token and consumes its text from the reader. Tokens of every kind are
// returned, noise included; classification is left to the caller.
//
// A Tokenizer holds the group stack for nested lexical groups, so it must
// not be shared between concurrent parses.
type Tokenizer struct {
	grammar *egt.Grammar
	reader  *Reader
	groups  []*groupFrame
	eofSym  *egt.Symbol
	errSym  *egt.Symbol
}

// groupFrame is one open lexical group: the token accumulating the group's
// text, and the group that opened it.
type groupFrame struct {
	token *goldengine.Token
	group *egt.Group
}

// New creates a tokenizer for a loaded grammar over the given reader.
func New(g *egt.Grammar, r *Reader) *Tokenizer {
	t := &Tokenizer{
		grammar: g,
		reader:  r,
		eofSym:  g.SymbolByKind(egt.SymbolEOF),
		errSym:  g.SymbolByKind(egt.SymbolError),
	}
	// Old table files may omit the synthetic terminals.
	if t.eofSym == nil {
		t.eofSym = &egt.Symbol{Index: -1, Name: "EOF", Kind: egt.SymbolEOF}
	}
	if t.errSym == nil {
		t.errSym = &egt.Symbol{Index: -1, Name: "Error", Kind: egt.SymbolError}
	}
	return t
}

// GroupDepth returns the number of currently open lexical groups. A
// non-zero depth at end of input is a runaway group.
func (t *Tokenizer) GroupDepth() int {
	return len(t.groups)
}

// Reset drops all open groups. The reader is reset separately.
func (t *Tokenizer) Reset() {
	t.groups = nil
}

// Next produces the next token. Lexical groups are resolved here: a group
// start symbol switches into nested-group mode, and the whole group is
// reported as one token whose parent symbol is the outermost group's
// container. At end of input Next returns the EndOfFile token, whether or
// not groups are still open.
func (t *Tokenizer) Next() *goldengine.Token {
	for {
		read := t.lookaheadDFA()

		var nest *egt.Group
		if read.Kind() == egt.SymbolGroupStart {
			g := t.grammar.GroupByStart(read.Symbol)
			if g != nil && (len(t.groups) == 0 || t.top().group.CanNest(g.Index)) {
				nest = g
			}
		}
		switch {
		case nest != nil:
			// open one more group level
			tracer().Debugf("open group %q at %v", nest.Name, read.Pos)
			t.consume(read)
			t.groups = append(t.groups, &groupFrame{token: read, group: nest})

		case len(t.groups) == 0:
			// ordinary token outside any group
			if read.Kind() != egt.SymbolEOF {
				t.consume(read)
			}
			return read

		case t.top().group.End.Index == read.Symbol.Index:
			// end symbol of the innermost open group
			frame := t.pop()
			if frame.group.Ending == egt.EndingClosed {
				frame.token.Text += read.Text
				t.consume(read)
			}
			if len(t.groups) == 0 {
				frame.token.Symbol = frame.group.Container
				frame.token.Span[1] = t.reader.Offset()
				tracer().Debugf("group %q closed: %q", frame.group.Name, frame.token.Text)
				return frame.token
			}
			t.top().token.Text += frame.token.Text

		case read.Kind() == egt.SymbolEOF:
			// runaway group; the parser reports the error
			return read

		default:
			// interior of a group: advance token- or character-wise
			top := t.top()
			if top.group.Advance == egt.AdvanceToken {
				top.token.Text += read.Text
				t.consume(read)
			} else {
				ch, _ := t.reader.Lookahead(1)
				top.token.Text += string(ch)
				t.reader.Consume(1)
			}
		}
	}
}

func (t *Tokenizer) top() *groupFrame {
	return t.groups[len(t.groups)-1]
}

func (t *Tokenizer) pop() *groupFrame {
	frame := t.groups[len(t.groups)-1]
	t.groups = t.groups[:len(t.groups)-1]
	return frame
}

// consume crops a token's text off the reader.
func (t *Tokenizer) consume(tok *goldengine.Token) {
	t.reader.Consume(int(tok.Span.Len()))
}

// lookaheadDFA runs the longest-accepting-match algorithm from the DFA
// initial state. It never consumes: the token's text is a copy of the
// matched lookahead prefix.
//
// If no accepting state is reached, an Error-kind token holding the first
// character is produced; the parser converts it to a lexical error. End of
// input on the first lookahead yields the EndOfFile token.
func (t *Tokenizer) lookaheadDFA() *goldengine.Token {
	pos := t.reader.Position()
	start := t.reader.Offset()
	state := t.grammar.DFAStates[t.grammar.InitialDFA]
	var lastAccept *egt.Symbol
	lastLen := 0

	for i := 1; ; i++ {
		ch, ok := t.reader.Lookahead(i)
		if !ok {
			if i == 1 {
				return &goldengine.Token{
					Symbol: t.eofSym,
					Pos:    pos,
					Span:   goldengine.Span{start, start},
				}
			}
			break
		}
		target := state.FindEdge(ch)
		if target < 0 {
			break
		}
		next := t.grammar.DFAStates[target]
		if next.Accept {
			lastAccept = next.AcceptSymbol
			lastLen = i
		}
		state = next
	}
	if lastAccept == nil {
		return &goldengine.Token{
			Symbol: t.errSym,
			Text:   t.reader.Text(1),
			Pos:    pos,
			Span:   goldengine.Span{start, start + 1},
		}
	}
	return &goldengine.Token{
		Symbol: lastAccept,
		Text:   t.reader.Text(lastLen),
		Pos:    pos,
		Span:   goldengine.Span{start, start + uint64(lastLen)},
	}
}
