/*
Package parser implements the LALR(1) driver of the engine.

The parser pulls tokens from the DFA tokenizer and pushes them through the
grammar's LALR state machine one action at a time. Clients either call Run,
which drives the machine to its terminal event, or Step, which performs a
bounded amount of work per call and returns exactly one event: a token was
read, a rule was reduced, the input was accepted, or parsing failed with a
lexical, syntax, group or internal error.

Event emission is return-value based, never callback based; the embedder
owns the loop. A parser owns its mutable state (parse stack, current state,
tokenizer, source reader) and shares nothing but the immutable grammar
tables, so any number of parsers may run concurrently over one grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 David Freudenthaler <david@freudenthaler.net>

*/
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'goldengine.parser'.
func tracer() tracing.Trace {
	return tracing.Select("goldengine.parser")
}
