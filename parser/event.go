package parser

import (
	"fmt"
	"strings"

	"github.com/dfreuden/goldengine"
	"github.com/dfreuden/goldengine/egt"
)

// EventKind discriminates parse events.
type EventKind int8

const (
	// Empty means no work was left: the parser already reached a terminal
	// event.
	Empty EventKind = iota
	// TokenRead reports one token read from the tokenizer. Noise tokens
	// are reported too, then discarded internally.
	TokenRead
	// Reduction reports one fired rule; the event carries the reduction.
	Reduction
	// Accept reports a completed parse; the event carries the root
	// reduction.
	Accept
	// NotLoaded means no source has been attached yet.
	NotLoaded
	// LexicalError means the DFA could not match the input; the event
	// position is the offending character.
	LexicalError
	// SyntaxError means the current state has no action for the lookahead
	// token; the event carries the expected terminals.
	SyntaxError
	// GroupError means the input ended while a lexical group was open.
	GroupError
	// InternalError means the tables are inconsistent (a Goto lookup
	// failed after a reduce).
	InternalError
)

func (k EventKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case TokenRead:
		return "TokenRead"
	case Reduction:
		return "Reduction"
	case Accept:
		return "Accept"
	case NotLoaded:
		return "NotLoaded"
	case LexicalError:
		return "LexicalError"
	case SyntaxError:
		return "SyntaxError"
	case GroupError:
		return "GroupError"
	case InternalError:
		return "InternalError"
	}
	return fmt.Sprintf("EventKind(%d)", int8(k))
}

// Event is one parse event, as returned by Step and Run.
type Event struct {
	Kind      EventKind
	Token     *goldengine.Token     // TokenRead, LexicalError, SyntaxError; head token for Reduction
	Reduction *goldengine.Reduction // Reduction, Accept
	Trimmed   bool                  // Reduction only: wrapper rule was elided
	Pos       goldengine.Position   // position of the triggering token
	Expected  []*egt.Symbol         // SyntaxError only, ordered by symbol index
}

// Terminal reports whether the event ends the parse.
func (e Event) Terminal() bool {
	switch e.Kind {
	case Accept, NotLoaded, LexicalError, SyntaxError, GroupError, InternalError:
		return true
	}
	return false
}

func (e Event) String() string {
	switch e.Kind {
	case TokenRead:
		return fmt.Sprintf("TokenRead %v", e.Token)
	case Reduction:
		if e.Trimmed {
			return fmt.Sprintf("Reduction (trimmed) %v", e.Reduction)
		}
		return fmt.Sprintf("Reduction %v", e.Reduction)
	case Accept:
		return fmt.Sprintf("Accept %v", e.Reduction)
	case LexicalError:
		return fmt.Sprintf("LexicalError at %v: %q not recognized", e.Pos, e.Token.Text)
	case SyntaxError:
		names := make([]string, len(e.Expected))
		for i, sym := range e.Expected {
			names[i] = sym.String()
		}
		return fmt.Sprintf("SyntaxError at %v: expected %s", e.Pos,
			strings.Join(names, " "))
	case GroupError:
		return fmt.Sprintf("GroupError at %v: runaway group", e.Pos)
	}
	return e.Kind.String()
}
