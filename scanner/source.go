package scanner

import (
	"github.com/dfreuden/goldengine"
)

// Reader is a character source with position tracking and unbounded
// lookahead into the not-yet-consumed rest of the input. The reader owns
// its character buffer for the lifetime of a parse run.
//
// Lookahead is 1-indexed: Lookahead(1) is the next unconsumed code point.
// After Consume(k), Lookahead(1) yields the (k+1)-th character of the
// pre-consume position.
type Reader struct {
	src  []rune
	pos  int  // index of the next unconsumed rune
	line int  // 1-based
	col  int  // 1-based
	prev rune // last consumed rune, to count CR LF once
}

// NewReader creates a reader over the given input text.
func NewReader(input string) *Reader {
	return &Reader{
		src:  []rune(input),
		line: 1,
		col:  1,
	}
}

// Feed appends further input characters. The tokenizer requires bounded
// lookahead only, so embedders may feed a long input piecewise between
// parse steps.
func (r *Reader) Feed(more string) {
	r.src = append(r.src, []rune(more)...)
}

// Lookahead returns the n-th code point from the current position,
// 1-indexed. ok is false when the requested position lies past the end of
// the input.
func (r *Reader) Lookahead(n int) (rune, bool) {
	at := r.pos + n - 1
	if at >= len(r.src) {
		return 0, false
	}
	return r.src[at], true
}

// Text returns the next n unconsumed code points as a string, without
// consuming them. n must not exceed the remaining input length.
func (r *Reader) Text(n int) string {
	return string(r.src[r.pos : r.pos+n])
}

// Consume advances the logical position by n code points, updating the
// line/column position. The line counter increments on '\n' and on a lone
// '\r'; a "\r\n" pair counts as one line break. Columns reset to 1 at the
// start of a line.
func (r *Reader) Consume(n int) {
	for i := 0; i < n && r.pos < len(r.src); i++ {
		c := r.src[r.pos]
		r.pos++
		switch c {
		case '\n':
			if r.prev != '\r' { // CR LF already counted at the CR
				r.line++
				r.col = 1
			}
		case '\r':
			r.line++
			r.col = 1
		default:
			r.col++
		}
		r.prev = c
	}
}

// Position returns the line/column of the next unconsumed character.
func (r *Reader) Position() goldengine.Position {
	return goldengine.Position{Line: r.line, Col: r.col}
}

// Offset returns the absolute rune offset of the next unconsumed character.
func (r *Reader) Offset() uint64 {
	return uint64(r.pos)
}

// Exhausted reports whether all input has been consumed.
func (r *Reader) Exhausted() bool {
	return r.pos >= len(r.src)
}

// Reset rewinds the reader to the start of its input.
func (r *Reader) Reset() {
	r.pos = 0
	r.line = 1
	r.col = 1
	r.prev = 0
}

// Load replaces the reader's input and rewinds.
func (r *Reader) Load(input string) {
	r.src = []rune(input)
	r.Reset()
}
