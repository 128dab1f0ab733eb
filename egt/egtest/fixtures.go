package egtest

import "github.com/dfreuden/goldengine/egt"

// Symbol indices of the Slice fixture.
const (
	SliceEOF = iota
	SliceError
	SliceWs
	SliceA // terminal 'a'
	SliceS // nonterminal S
)

// SliceBytes returns the EGT image of the left-recursive grammar
//
//	S ::= 'a'
//	S ::= S 'a'
//
// with whitespace noise.
func SliceBytes() []byte {
	f := NewFile()
	f.Property(0, "Name", "Slices")
	f.Property(1, "Version", "1.0")
	f.Property(2, "About", "left-recursive list of a's")
	f.Counts(5, 2, 2, 3, 4, 0)
	f.CharSet(0, 0, [2]int{'a', 'a'})
	f.CharSet(1, 0, [2]int{'\t', '\n'}, [2]int{'\r', '\r'}, [2]int{' ', ' '})
	f.Symbol(SliceEOF, "EOF", egt.SymbolEOF)
	f.Symbol(SliceError, "Error", egt.SymbolError)
	f.Symbol(SliceWs, "Whitespace", egt.SymbolNoise)
	f.Symbol(SliceA, "a", egt.SymbolTerminal)
	f.Symbol(SliceS, "S", egt.SymbolNonterminal)
	f.Rule(0, SliceS, SliceA)         // S ::= a
	f.Rule(1, SliceS, SliceS, SliceA) // S ::= S a
	f.Initial(0, 0)
	f.DFA(0, -1, [2]int{0, 1}, [2]int{1, 2})
	f.DFA(1, SliceA)
	f.DFA(2, SliceWs, [2]int{1, 2})
	f.LALR(0, Shift(SliceA, 1), Goto(SliceS, 2))
	f.LALR(1, Reduce(SliceA, 0), Reduce(SliceEOF, 0))
	f.LALR(2, Accept(SliceEOF), Shift(SliceA, 3))
	f.LALR(3, Reduce(SliceA, 1), Reduce(SliceEOF, 1))
	return f.Bytes()
}

// Slice loads the Slice fixture.
func Slice() *egt.Grammar {
	return mustLoad(SliceBytes())
}

// Symbol indices of the Expr fixture.
const (
	ExprEOF = iota
	ExprError
	ExprWs
	ExprId     // terminal id
	ExprPlus   // terminal '+'
	ExprLparen // terminal '('
	ExprRparen // terminal ')'
	ExprE      // nonterminal E
)

// ExprBytes returns the EGT image of the expression grammar
//
//	E ::= E '+' E
//	E ::= '(' E ')'
//	E ::= id
//
// with whitespace noise. The hand-built tables resolve the dangling
// shift/reduce conflict in favor of reduce, making '+' left-associative.
func ExprBytes() []byte {
	f := NewFile()
	f.Property(0, "Name", "Expr")
	f.Property(1, "Version", "1.0")
	f.Counts(8, 5, 3, 6, 8, 0)
	f.CharSet(0, 0, [2]int{'a', 'z'})
	f.CharSet(1, 0, [2]int{'+', '+'})
	f.CharSet(2, 0, [2]int{'(', '('})
	f.CharSet(3, 0, [2]int{')', ')'})
	f.CharSet(4, 0, [2]int{'\t', '\n'}, [2]int{'\r', '\r'}, [2]int{' ', ' '})
	f.Symbol(ExprEOF, "EOF", egt.SymbolEOF)
	f.Symbol(ExprError, "Error", egt.SymbolError)
	f.Symbol(ExprWs, "Whitespace", egt.SymbolNoise)
	f.Symbol(ExprId, "id", egt.SymbolTerminal)
	f.Symbol(ExprPlus, "+", egt.SymbolTerminal)
	f.Symbol(ExprLparen, "(", egt.SymbolTerminal)
	f.Symbol(ExprRparen, ")", egt.SymbolTerminal)
	f.Symbol(ExprE, "E", egt.SymbolNonterminal)
	f.Rule(0, ExprE, ExprE, ExprPlus, ExprE)      // E ::= E + E
	f.Rule(1, ExprE, ExprLparen, ExprE, ExprRparen) // E ::= ( E )
	f.Rule(2, ExprE, ExprId)                      // E ::= id
	f.Initial(0, 0)
	f.DFA(0, -1, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5})
	f.DFA(1, ExprId, [2]int{0, 1})
	f.DFA(2, ExprPlus)
	f.DFA(3, ExprLparen)
	f.DFA(4, ExprRparen)
	f.DFA(5, ExprWs, [2]int{4, 5})
	f.LALR(0, Shift(ExprId, 1), Shift(ExprLparen, 2), Goto(ExprE, 3))
	f.LALR(1, Reduce(ExprEOF, 2), Reduce(ExprPlus, 2), Reduce(ExprRparen, 2))
	f.LALR(2, Shift(ExprId, 1), Shift(ExprLparen, 2), Goto(ExprE, 4))
	f.LALR(3, Accept(ExprEOF), Shift(ExprPlus, 5))
	f.LALR(4, Shift(ExprPlus, 5), Shift(ExprRparen, 6))
	f.LALR(5, Shift(ExprId, 1), Shift(ExprLparen, 2), Goto(ExprE, 7))
	f.LALR(6, Reduce(ExprEOF, 1), Reduce(ExprPlus, 1), Reduce(ExprRparen, 1))
	f.LALR(7, Reduce(ExprEOF, 0), Reduce(ExprPlus, 0), Reduce(ExprRparen, 0))
	return f.Bytes()
}

// Expr loads the Expr fixture.
func Expr() *egt.Grammar {
	return mustLoad(ExprBytes())
}

// Symbol indices of the Comments fixture.
const (
	CommentsEOF = iota
	CommentsError
	CommentsWs
	CommentsNewLine
	CommentsBlock      // container of the block-comment group
	CommentsLine       // container of the line-comment group
	CommentsBlockStart // terminal '/*'
	CommentsBlockEnd   // terminal '*/'
	CommentsLineStart  // terminal '--'
	CommentsId         // terminal id
	CommentsS          // nonterminal S
)

// CommentsBytes returns the EGT image of a one-rule grammar (S ::= id)
// with two lexical groups: nestable block comments
//
//	/* ... /* ... */ ... */     character advance, closed ending
//
// and line comments
//
//	-- ...                      token advance, open ending (newline stays)
func CommentsBytes() []byte {
	f := NewFile()
	f.Property(0, "Name", "Comments")
	f.Property(1, "Version", "1.0")
	f.Counts(11, 6, 1, 10, 3, 2)
	f.CharSet(0, 0, [2]int{'a', 'z'})
	f.CharSet(1, 0, [2]int{'\t', '\t'}, [2]int{' ', ' '})
	f.CharSet(2, 0, [2]int{'\n', '\n'}, [2]int{'\r', '\r'})
	f.CharSet(3, 0, [2]int{'/', '/'})
	f.CharSet(4, 0, [2]int{'*', '*'})
	f.CharSet(5, 0, [2]int{'-', '-'})
	f.Symbol(CommentsEOF, "EOF", egt.SymbolEOF)
	f.Symbol(CommentsError, "Error", egt.SymbolError)
	f.Symbol(CommentsWs, "Whitespace", egt.SymbolNoise)
	f.Symbol(CommentsNewLine, "NewLine", egt.SymbolNoise)
	f.Symbol(CommentsBlock, "Comment", egt.SymbolNoise)
	f.Symbol(CommentsLine, "LineComment", egt.SymbolNoise)
	f.Symbol(CommentsBlockStart, "/*", egt.SymbolGroupStart)
	f.Symbol(CommentsBlockEnd, "*/", egt.SymbolGroupEnd)
	f.Symbol(CommentsLineStart, "--", egt.SymbolGroupStart)
	f.Symbol(CommentsId, "id", egt.SymbolTerminal)
	f.Symbol(CommentsS, "S", egt.SymbolNonterminal)
	f.Group(0, "Comment Block", CommentsBlock, CommentsBlockStart, CommentsBlockEnd,
		egt.AdvanceCharacter, egt.EndingClosed, 0)
	f.Group(1, "Comment Line", CommentsLine, CommentsLineStart, CommentsNewLine,
		egt.AdvanceToken, egt.EndingOpen)
	f.Rule(0, CommentsS, CommentsId)
	f.Initial(0, 0)
	f.DFA(0, -1, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3},
		[2]int{3, 4}, [2]int{4, 6}, [2]int{5, 8})
	f.DFA(1, CommentsId, [2]int{0, 1})
	f.DFA(2, CommentsWs, [2]int{1, 2})
	f.DFA(3, CommentsNewLine, [2]int{2, 3})
	f.DFA(4, -1, [2]int{4, 5}) // '/' seen
	f.DFA(5, CommentsBlockStart)
	f.DFA(6, -1, [2]int{3, 7}) // '*' seen
	f.DFA(7, CommentsBlockEnd)
	f.DFA(8, -1, [2]int{5, 9}) // '-' seen
	f.DFA(9, CommentsLineStart)
	f.LALR(0, Shift(CommentsId, 1), Goto(CommentsS, 2))
	f.LALR(1, Reduce(CommentsEOF, 0))
	f.LALR(2, Accept(CommentsEOF))
	return f.Bytes()
}

// Comments loads the Comments fixture.
func Comments() *egt.Grammar {
	return mustLoad(CommentsBytes())
}

// Symbol indices of the Chain fixture.
const (
	ChainEOF = iota
	ChainError
	ChainX // terminal 'x'
	ChainA // nonterminal A
	ChainB // nonterminal B
	ChainC // nonterminal C
)

// ChainBytes returns the EGT image of the wrapper-rule chain
//
//	A ::= B
//	B ::= C
//	C ::= 'x'
//
// used to exercise reduction trimming.
func ChainBytes() []byte {
	f := NewFile()
	f.Property(0, "Name", "Chain")
	f.Property(1, "Version", "1.0")
	f.Counts(6, 1, 3, 2, 5, 0)
	f.CharSet(0, 0, [2]int{'x', 'x'})
	f.Symbol(ChainEOF, "EOF", egt.SymbolEOF)
	f.Symbol(ChainError, "Error", egt.SymbolError)
	f.Symbol(ChainX, "x", egt.SymbolTerminal)
	f.Symbol(ChainA, "A", egt.SymbolNonterminal)
	f.Symbol(ChainB, "B", egt.SymbolNonterminal)
	f.Symbol(ChainC, "C", egt.SymbolNonterminal)
	f.Rule(0, ChainA, ChainB)
	f.Rule(1, ChainB, ChainC)
	f.Rule(2, ChainC, ChainX)
	f.Initial(0, 0)
	f.DFA(0, -1, [2]int{0, 1})
	f.DFA(1, ChainX)
	f.LALR(0, Shift(ChainX, 1), Goto(ChainA, 2), Goto(ChainB, 3), Goto(ChainC, 4))
	f.LALR(1, Reduce(ChainEOF, 2))
	f.LALR(2, Accept(ChainEOF))
	f.LALR(3, Reduce(ChainEOF, 0))
	f.LALR(4, Reduce(ChainEOF, 1))
	return f.Bytes()
}

// Chain loads the Chain fixture.
func Chain() *egt.Grammar {
	return mustLoad(ChainBytes())
}
