/*
Package scanner tokenizes source text with the lookahead DFA of a loaded
grammar.

Two types live here. Reader holds the source characters and tracks the
line/column position; it hands out code points through a 1-indexed lookahead
and consumes them in bulk. Tokenizer drives the grammar's DFA over the
reader using the longest-accepting-match rule, and handles nested lexical
groups (block comments, composite literals), reporting a whole group as a
single token of its container symbol.

The tokenizer never looks at the LALR tables; dropping noise tokens and
reacting to error tokens is the parser's business.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 David Freudenthaler <david@freudenthaler.net>

*/
package scanner

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'goldengine.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("goldengine.scanner")
}
