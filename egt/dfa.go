package egt

import "fmt"

// DFAEdge connects a DFA state to a target state for every code point inside
// a character set.
type DFAEdge struct {
	Chars  *CharacterSet
	Target int
}

// DFAState is a state of the lookahead DFA driving the tokenizer. A state
// may accept a terminal symbol; AcceptSymbol is valid iff Accept is set.
// Edges are tried in stored order and the first match wins; implementations
// must not re-sort them.
type DFAState struct {
	Index        int
	Accept       bool
	AcceptSymbol *Symbol
	Edges        []DFAEdge
}

// FindEdge returns the target state for code point r, or -1 if no edge of
// the state covers r.
func (s *DFAState) FindEdge(r rune) int {
	for _, e := range s.Edges {
		if e.Chars.Contains(r) {
			return e.Target
		}
	}
	return -1
}

func (s *DFAState) String() string {
	if s.Accept {
		return fmt.Sprintf("DFA state %d accept %s, %d edges", s.Index,
			s.AcceptSymbol, len(s.Edges))
	}
	return fmt.Sprintf("DFA state %d, %d edges", s.Index, len(s.Edges))
}
