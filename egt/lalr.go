package egt

import "fmt"

// ActionKind discriminates LALR parse actions. The numeric values are the
// wire values used by the EGT LALR-state records.
type ActionKind uint16

const (
	ActionShift  ActionKind = iota + 1 // push token, move to target state
	ActionReduce                       // fire rule with index target
	ActionGoto                         // nonterminal transition after a reduce
	ActionAccept                       // input recognized
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "Shift"
	case ActionReduce:
		return "Reduce"
	case ActionGoto:
		return "Goto"
	case ActionAccept:
		return "Accept"
	}
	return fmt.Sprintf("ActionKind(%d)", uint16(k))
}

// Action maps a single lookahead symbol to a parse action. Target is a state
// index for Shift and Goto and a rule index for Reduce; it is unused for
// Accept.
type Action struct {
	Symbol *Symbol
	Kind   ActionKind
	Target int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionAccept:
		return fmt.Sprintf("%s → Accept", a.Symbol)
	case ActionReduce:
		return fmt.Sprintf("%s → Reduce rule %d", a.Symbol, a.Target)
	}
	return fmt.Sprintf("%s → %s %d", a.Symbol, a.Kind, a.Target)
}

// LALRState is a state of the LALR(1) machine: a list of actions, keyed by
// lookahead symbol. Lookahead symbols within a state are unique.
type LALRState struct {
	Index   int
	Actions []Action
}

// FindAction returns the action for the given lookahead symbol, or nil if
// the state has none.
func (s *LALRState) FindAction(sym *Symbol) *Action {
	for i := range s.Actions {
		if s.Actions[i].Symbol.Index == sym.Index {
			return &s.Actions[i]
		}
	}
	return nil
}

func (s *LALRState) String() string {
	return fmt.Sprintf("LALR state %d, %d actions", s.Index, len(s.Actions))
}
