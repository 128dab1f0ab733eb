package parser

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/dfreuden/goldengine"
	"github.com/dfreuden/goldengine/egt"
	"github.com/dfreuden/goldengine/scanner"
)

// Parser is an LALR(1) driver over a loaded grammar. Create one with New,
// attach source text with LoadSource (or use NewWithSource), then call Run
// or Step.
type Parser struct {
	grammar *egt.Grammar
	reader  *scanner.Reader
	tok     *scanner.Tokenizer

	stack   []*goldengine.Token // parse stack; slot 0 is the sentinel
	state   int                 // current LALR state index
	pending *goldengine.Token   // lazily refilled input slot

	haveReduction bool
	trim          bool
	root          *goldengine.Reduction
	pos           goldengine.Position
	loaded        bool
	done          bool
}

// Option configures a parser.
type Option func(*Parser)

// TrimReductions controls whether reductions of single-nonterminal wrapper
// rules are elided from the parse tree. Off by default.
func TrimReductions(on bool) Option {
	return func(p *Parser) {
		p.trim = on
	}
}

// New creates a parser for a loaded grammar. No source is attached yet;
// stepping before LoadSource yields a NotLoaded event.
func New(g *egt.Grammar, opts ...Option) *Parser {
	p := &Parser{
		grammar: g,
		reader:  scanner.NewReader(""),
	}
	p.tok = scanner.New(g, p.reader)
	for _, opt := range opts {
		opt(p)
	}
	p.restart()
	return p
}

// NewWithSource creates a parser and binds source text in one call.
func NewWithSource(g *egt.Grammar, input string, opts ...Option) *Parser {
	p := New(g, opts...)
	p.LoadSource(input)
	return p
}

// LoadSource attaches source text and restarts the parser. The grammar
// tables are retained.
func (p *Parser) LoadSource(input string) {
	p.reader.Load(input)
	p.loaded = true
	p.restart()
}

// Reset clears the parse stack, the tokenizer state, and the source
// position, retaining grammar and source. A subsequent parse of the same
// input yields the same event sequence.
func (p *Parser) Reset() {
	p.reader.Reset()
	p.restart()
}

// restart re-arms the machine: initial state, sentinel-only stack.
func (p *Parser) restart() {
	p.tok.Reset()
	p.state = p.grammar.InitialLALR
	p.stack = p.stack[:0]
	p.stack = append(p.stack, &goldengine.Token{State: p.state}) // sentinel
	p.pending = nil
	p.haveReduction = false
	p.root = nil
	p.pos = goldengine.StartOfInput()
	p.done = false
}

// Grammar returns the grammar tables this parser runs on.
func (p *Parser) Grammar() *egt.Grammar {
	return p.grammar
}

// CurrentPosition returns the position of the last token the driver looked
// at, (1,1) before the first token.
func (p *Parser) CurrentPosition() goldengine.Position {
	return p.pos
}

// CurrentToken returns the pending input token, or nil.
func (p *Parser) CurrentToken() *goldengine.Token {
	return p.pending
}

// CurrentReduction returns the reduction on top of the parse stack, or nil.
// It is non-nil right after an untrimmed Reduction event and after Accept;
// after a trimmed Reduction event it is nil.
func (p *Parser) CurrentReduction() *goldengine.Reduction {
	if !p.haveReduction {
		return nil
	}
	return p.top().Reduction
}

// SetCurrentReduction replaces the reduction on top of the parse stack.
// Embedders evaluating rules on the fly may swap in their own data; the
// parser never looks inside a reduction again after creating it.
func (p *Parser) SetCurrentReduction(r *goldengine.Reduction) {
	if p.haveReduction {
		p.top().Reduction = r
	}
}

// Root returns the root reduction after an Accept event, nil before.
func (p *Parser) Root() *goldengine.Reduction {
	return p.root
}

// Run drives Step until a terminal event (Accept or one of the errors) and
// returns it. Running a parser that already reached a terminal event
// returns an Empty event.
func (p *Parser) Run() Event {
	for {
		ev := p.Step()
		if ev.Terminal() || ev.Kind == Empty {
			return ev
		}
	}
}

// Step performs one parse step. Work per call is bounded: at most one
// tokenizer call and at most two LALR actions (a shift of the pending token,
// then, when the next token is the end of input, the action for it).
// Exactly one event is returned;
// events of kind TokenRead and Reduction leave the parse resumable,
// everything else except Empty ends it.
func (p *Parser) Step() Event {
	if !p.loaded {
		return Event{Kind: NotLoaded, Pos: p.pos}
	}
	if p.done {
		return Event{Kind: Empty, Pos: p.pos}
	}
	for {
		if p.pending == nil {
			tok := p.tok.Next()
			p.pending = tok
			if tok.Kind() == egt.SymbolEOF {
				if p.tok.GroupDepth() > 0 {
					// unterminated comment block swallowed the input
					p.done = true
					return Event{Kind: GroupError, Pos: tok.Pos}
				}
				continue // end of input is not reported as TokenRead
			}
			tracer().Debugf("token %v", tok)
			return Event{Kind: TokenRead, Token: tok, Pos: tok.Pos}
		}
		tok := p.pending
		p.pos = tok.Pos
		switch tok.Kind() {
		case egt.SymbolNoise:
			p.pending = nil
			continue
		case egt.SymbolError:
			p.done = true
			return Event{Kind: LexicalError, Token: tok, Pos: tok.Pos}
		}
		if ev, emitted := p.parseToken(tok); emitted {
			return ev
		}
	}
}

// parseToken consults the LALR tables for the pending token and performs
// one action. Shifts emit no event (emitted is false); everything else
// maps to an event.
func (p *Parser) parseToken(tok *goldengine.Token) (Event, bool) {
	p.haveReduction = false
	kind, target, ok := p.grammar.Action(p.state, tok.Symbol)
	if !ok || kind == egt.ActionGoto {
		// no action for the lookahead: report what would have shifted
		p.done = true
		return Event{
			Kind:     SyntaxError,
			Pos:      tok.Pos,
			Token:    tok,
			Expected: p.expectedSymbols(),
		}, true
	}
	switch kind {
	case egt.ActionShift:
		tracer().Debugf("shift %v, to state %d", tok, target)
		tok.State = target
		p.stack = append(p.stack, tok)
		p.pending = nil
		p.state = target
		return Event{}, false

	case egt.ActionReduce:
		return p.reduce(p.grammar.Rules[target], tok)

	case egt.ActionAccept:
		p.haveReduction = true
		p.root = p.top().Reduction
		p.done = true
		tracer().Infof("input accepted")
		return Event{Kind: Accept, Reduction: p.root, Pos: tok.Pos}, true
	}
	p.done = true
	return Event{Kind: InternalError, Pos: tok.Pos}, true
}

// reduce pops the rule's body off the stack, pushes the head token, and
// follows the Goto transition found at the post-pop top of stack.
//
// A single-nonterminal rule is elided when trimming is on: the popped token
// is kept and relabeled instead of being wrapped in a reduction node.
func (p *Parser) reduce(rule *egt.Rule, lookahead *goldengine.Token) (Event, bool) {
	tracer().Debugf("reduce %v", rule)
	var head *goldengine.Token
	trimmed := false
	if p.trim && rule.IsSingleNonterminal() {
		head = p.pop()
		head.Symbol = rule.Head
		trimmed = true
	} else {
		body := make([]*goldengine.Token, len(rule.Body))
		for i := len(body) - 1; i >= 0; i-- {
			body[i] = p.pop()
		}
		head = &goldengine.Token{
			Symbol:    rule.Head,
			Reduction: &goldengine.Reduction{Rule: rule, Tokens: body},
		}
		if len(body) > 0 {
			head.Pos = body[0].Pos
			head.Span = body[0].Span.Extend(body[len(body)-1].Span)
		} else {
			head.Pos = lookahead.Pos // epsilon fired just before the lookahead
			head.Span = goldengine.Span{lookahead.Span.From(), lookahead.Span.From()}
		}
		p.haveReduction = true
	}
	gotoKind, gotoTarget, ok := p.grammar.Action(p.top().State, rule.Head)
	if !ok || gotoKind != egt.ActionGoto {
		tracer().Errorf("no Goto for %v in state %d", rule.Head, p.top().State)
		p.done = true
		return Event{Kind: InternalError, Pos: lookahead.Pos}, true
	}
	head.State = gotoTarget
	p.stack = append(p.stack, head)
	p.state = gotoTarget
	return Event{
		Kind:      Reduction,
		Reduction: head.Reduction,
		Trimmed:   trimmed,
		Token:     head,
		Pos:       head.Pos,
	}, true
}

// expectedSymbols collects the symbols the current state could shift,
// ordered by symbol index.
func (p *Parser) expectedSymbols() []*egt.Symbol {
	set := treeset.NewWith(func(a, b interface{}) int {
		return a.(*egt.Symbol).Index - b.(*egt.Symbol).Index
	})
	for _, a := range p.grammar.LALRStates[p.state].Actions {
		if a.Kind == egt.ActionShift {
			set.Add(a.Symbol)
		}
	}
	expected := make([]*egt.Symbol, 0, set.Size())
	for _, v := range set.Values() {
		expected = append(expected, v.(*egt.Symbol))
	}
	return expected
}

func (p *Parser) top() *goldengine.Token {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) pop() *goldengine.Token {
	tok := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return tok
}
