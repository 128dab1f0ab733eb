/*
Package egt loads Enhanced Grammar Tables (EGT v5.0), the precompiled binary
grammar format produced by the GOLD parser builder.

The file is a flat sequence of logical records. Loading happens in three
stages: a binary reader decodes primitive entries (bytes, booleans, 16-bit
little-endian integers, null-terminated UTF-16LE strings), a record decoder
groups entries into tagged logical records, and the table assembler
scatter-writes the records into the typed tables of a Grammar: properties,
character sets, symbols, lexical groups, production rules, DFA states and
LALR states.

A loaded Grammar is immutable and safe to share between any number of
concurrent parser instances.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 David Freudenthaler <david@freudenthaler.net>

*/
package egt

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'goldengine.egt'.
func tracer() tracing.Trace {
	return tracing.Select("goldengine.egt")
}
