/*
Package egtest provides test support for the engine: a serializer writing
Grammar-shaped data back out as EGT v5.0 bytes, and a handful of small
grammars with hand-built DFA and LALR tables.

The serializer is the dual of egt.Load and exists for round-trip testing
and for constructing fixtures; it is not part of the shipping engine. All
fixture grammars are produced by serializing and re-loading, so every test
that touches a fixture also exercises the loader.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 David Freudenthaler <david@freudenthaler.net>

*/
package egtest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/dfreuden/goldengine/egt"
)

// File accumulates an EGT byte image record by record. The zero value is
// not usable; create one with NewFile, which writes the header.
type File struct {
	buf bytes.Buffer
}

// NewFile starts an EGT image with the v5.0 header string.
func NewFile() *File {
	f := &File{}
	f.str(egt.Header)
	return f
}

// Bytes returns the accumulated image.
func (f *File) Bytes() []byte {
	return f.buf.Bytes()
}

// --- primitive entries ------------------------------------------------------

func (f *File) u16(n int) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(n))
	f.buf.Write(b[:])
}

func (f *File) str(s string) {
	for _, unit := range utf16.Encode([]rune(s)) {
		f.u16(int(unit))
	}
	f.u16(0)
}

func (f *File) entryEmpty()      { f.buf.WriteByte('E') }
func (f *File) entryByte(b byte) { f.buf.WriteByte('b'); f.buf.WriteByte(b) }
func (f *File) entryBool(v bool) {
	f.buf.WriteByte('B')
	if v {
		f.buf.WriteByte(1)
	} else {
		f.buf.WriteByte(0)
	}
}
func (f *File) entryInt(n int)       { f.buf.WriteByte('I'); f.u16(n) }
func (f *File) entryString(s string) { f.buf.WriteByte('S'); f.str(s) }

// record writes the record frame: marker, entry count, discriminator.
// count is the number of payload entries following the discriminator.
func (f *File) record(kind byte, count int) {
	f.buf.WriteByte('M')
	f.u16(count + 1)
	f.entryByte(kind)
}

// --- logical records --------------------------------------------------------

// Property writes a property record.
func (f *File) Property(index int, name, value string) {
	f.record('p', 3)
	f.entryInt(index)
	f.entryString(name)
	f.entryString(value)
}

// Counts writes the table-counts record. It must precede all table records.
func (f *File) Counts(symbols, charsets, rules, dfa, lalr, groups int) {
	f.record('t', 6)
	for _, n := range []int{symbols, charsets, rules, dfa, lalr, groups} {
		f.entryInt(n)
	}
}

// CharSet writes a character-set record; ranges are inclusive (lo,hi)
// 16-bit pairs inside the given plane.
func (f *File) CharSet(index, plane int, ranges ...[2]int) {
	f.record('c', 4+2*len(ranges))
	f.entryInt(index)
	f.entryInt(plane)
	f.entryInt(len(ranges))
	f.entryEmpty()
	for _, r := range ranges {
		f.entryInt(r[0])
		f.entryInt(r[1])
	}
}

// Symbol writes a symbol record.
func (f *File) Symbol(index int, name string, kind egt.SymbolKind) {
	f.record('S', 3)
	f.entryInt(index)
	f.entryString(name)
	f.entryInt(int(kind))
}

// Group writes a lexical-group record.
func (f *File) Group(index int, name string, container, start, end int,
	advance egt.AdvanceMode, ending egt.EndingMode, nested ...int) {
	f.record('g', 9+len(nested))
	f.entryInt(index)
	f.entryString(name)
	f.entryInt(container)
	f.entryInt(start)
	f.entryInt(end)
	f.entryInt(int(advance))
	f.entryInt(int(ending))
	f.entryEmpty()
	f.entryInt(len(nested))
	for _, n := range nested {
		f.entryInt(n)
	}
}

// Rule writes a production-rule record; body holds symbol indices.
func (f *File) Rule(index, head int, body ...int) {
	f.record('R', 3+len(body))
	f.entryInt(index)
	f.entryInt(head)
	f.entryEmpty()
	for _, sym := range body {
		f.entryInt(sym)
	}
}

// Initial writes the initial-states record.
func (f *File) Initial(dfa, lalr int) {
	f.record('I', 2)
	f.entryInt(dfa)
	f.entryInt(lalr)
}

// DFA writes a DFA-state record. accept is the accepted symbol index, or -1
// for a non-accepting state. Edges are (charset, target) pairs, in order.
func (f *File) DFA(index, accept int, edges ...[2]int) {
	f.record('D', 4+3*len(edges))
	f.entryInt(index)
	f.entryBool(accept >= 0)
	if accept >= 0 {
		f.entryInt(accept)
	} else {
		f.entryInt(0)
	}
	f.entryEmpty()
	for _, e := range edges {
		f.entryInt(e[0])
		f.entryInt(e[1])
		f.entryEmpty()
	}
}

// Act is one LALR action for the serializer.
type Act struct {
	Sym    int
	Kind   egt.ActionKind
	Target int
}

// Shift, Reduce, Goto and Accept are shorthands for Act literals.
func Shift(sym, state int) Act { return Act{Sym: sym, Kind: egt.ActionShift, Target: state} }
func Reduce(sym, rule int) Act { return Act{Sym: sym, Kind: egt.ActionReduce, Target: rule} }
func Goto(sym, state int) Act  { return Act{Sym: sym, Kind: egt.ActionGoto, Target: state} }
func Accept(sym int) Act       { return Act{Sym: sym, Kind: egt.ActionAccept} }

// LALR writes an LALR-state record.
func (f *File) LALR(index int, actions ...Act) {
	f.record('L', 2+4*len(actions))
	f.entryInt(index)
	f.entryEmpty()
	for _, a := range actions {
		f.entryInt(a.Sym)
		f.entryInt(int(a.Kind))
		f.entryInt(a.Target)
		f.entryEmpty()
	}
}

// Serialize writes a loaded Grammar back out as EGT bytes. The output
// re-loads to tables with an identical fingerprint.
func Serialize(g *egt.Grammar) []byte {
	f := NewFile()
	for _, p := range g.Properties {
		f.Property(p.Index, p.Name, p.Value)
	}
	c := g.Counts
	f.Counts(c.Symbols, c.CharSets, c.Rules, c.DFAStates, c.LALRStates, c.Groups)
	for _, cs := range g.CharSets {
		ranges := make([][2]int, len(cs.Ranges))
		for i, r := range cs.Ranges {
			ranges[i] = [2]int{int(r.Lo & 0xFFFF), int(r.Hi & 0xFFFF)}
		}
		f.CharSet(cs.Index, cs.Plane, ranges...)
	}
	g.Symbols.Each(func(sym *egt.Symbol) {
		f.Symbol(sym.Index, sym.Name, sym.Kind)
	})
	for _, grp := range g.Groups {
		nested := make([]int, 0, grp.NestingCount())
		for i := 0; i < len(g.Groups); i++ {
			if grp.CanNest(i) {
				nested = append(nested, i)
			}
		}
		f.Group(grp.Index, grp.Name, grp.Container.Index, grp.Start.Index,
			grp.End.Index, grp.Advance, grp.Ending, nested...)
	}
	for _, r := range g.Rules {
		body := make([]int, len(r.Body))
		for i, sym := range r.Body {
			body[i] = sym.Index
		}
		f.Rule(r.Index, r.Head.Index, body...)
	}
	f.Initial(g.InitialDFA, g.InitialLALR)
	for _, s := range g.DFAStates {
		accept := -1
		if s.Accept {
			accept = s.AcceptSymbol.Index
		}
		edges := make([][2]int, len(s.Edges))
		for i, e := range s.Edges {
			edges[i] = [2]int{e.Chars.Index, e.Target}
		}
		f.DFA(s.Index, accept, edges...)
	}
	for _, s := range g.LALRStates {
		actions := make([]Act, len(s.Actions))
		for i, a := range s.Actions {
			actions[i] = Act{Sym: a.Symbol.Index, Kind: a.Kind, Target: a.Target}
		}
		f.LALR(s.Index, actions...)
	}
	return f.Bytes()
}

// mustLoad turns a fixture image into a Grammar, panicking on loader bugs
// so that broken fixtures fail loudly in every test using them.
func mustLoad(data []byte) *egt.Grammar {
	g, err := egt.Load(data)
	if err != nil {
		panic(fmt.Sprintf("egtest: broken fixture: %v", err))
	}
	return g
}
