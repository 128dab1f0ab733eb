package egt

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// AdvanceMode tells the tokenizer how to move through the input while a
// lexical group is open.
type AdvanceMode uint16

const (
	// AdvanceToken consumes whole DFA tokens.
	AdvanceToken AdvanceMode = iota
	// AdvanceCharacter consumes one code point at a time, bypassing the DFA.
	AdvanceCharacter
)

func (m AdvanceMode) String() string {
	if m == AdvanceCharacter {
		return "Character"
	}
	return "Token"
}

// EndingMode tells the tokenizer what to do with a group's end symbol.
type EndingMode uint16

const (
	// EndingOpen leaves the end symbol on the input for the next call.
	EndingOpen EndingMode = iota
	// EndingClosed consumes the end symbol into the group's text.
	EndingClosed
)

func (m EndingMode) String() string {
	if m == EndingClosed {
		return "Closed"
	}
	return "Open"
}

// Group is a lexical group: a bracketed span of input (block comment,
// composite literal) that the tokenizer reports as a single token. The
// container symbol becomes the parent symbol of that token; Start and End
// delimit the span. Nesting holds the indices of groups permitted to nest
// inside this one.
type Group struct {
	Index     int
	Name      string
	Container *Symbol
	Start     *Symbol
	End       *Symbol
	Advance   AdvanceMode
	Ending    EndingMode
	nesting   *hashset.Set // of int group indices
}

// CanNest reports whether the group with the given table index may open
// inside this group.
func (g *Group) CanNest(index int) bool {
	return g.nesting.Contains(index)
}

// NestingCount returns the number of groups permitted to nest inside this one.
func (g *Group) NestingCount() int {
	return g.nesting.Size()
}

func (g *Group) String() string {
	return fmt.Sprintf("group %d %q %s…%s advance=%s ending=%s", g.Index,
		g.Name, g.Start, g.End, g.Advance, g.Ending)
}
