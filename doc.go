/*
Package goldengine is a runtime engine for GOLD parser tables.

It loads a precompiled Enhanced Grammar Table (EGT v5.0), tokenizes source
text with the table's lookahead DFA, and drives an LALR(1) state machine
over the token stream, producing a tree of reductions. Package structure is
as follows:

■ egt: Package egt decodes the binary table file into in-memory symbol,
character-set, group, rule, DFA and LALR tables.

■ scanner: Package scanner provides a position-tracking source reader and the
DFA tokenizer, including nested lexical groups (block comments, composite
literals).

■ parser: Package parser implements the LALR(1) driver. It consumes tokens,
maintains the parse stack, and emits token-read, reduction, accept and error
events one step at a time.

■ sparse: Package sparse holds a small sparse-matrix type backing the LALR
action index.

The base package contains data types which are used throughout all the other
packages: source positions, input spans, tokens and reductions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 David Freudenthaler <david@freudenthaler.net>

*/
package goldengine
