package egt

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Entry type tags, per the EGT entry format.
const (
	tagEmpty  = 'E' // no payload
	tagByte   = 'b' // 1 byte
	tagBool   = 'B' // 1 byte, 0 ⇒ false
	tagInt    = 'I' // 2 bytes, little-endian unsigned
	tagString = 'S' // UTF-16LE code units, 0x0000-terminated
)

// entry is a decoded primitive entry. Exactly one payload field is valid,
// selected by tag.
type entry struct {
	tag  byte
	n    uint16
	b    byte
	flag bool
	s    string
}

func (e entry) String() string {
	switch e.tag {
	case tagEmpty:
		return "E"
	case tagByte:
		return fmt.Sprintf("b(%d)", e.b)
	case tagBool:
		return fmt.Sprintf("B(%v)", e.flag)
	case tagInt:
		return fmt.Sprintf("I(%d)", e.n)
	case tagString:
		return fmt.Sprintf("S(%q)", e.s)
	}
	return fmt.Sprintf("?(%d)", e.tag)
}

// reader decodes primitive entries from a byte buffer. It has no knowledge
// of logical records; that layer lives in records.go.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) atEOF() bool {
	return r.pos >= len(r.data)
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("%w: byte at offset %d", ErrTruncated, r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, fmt.Errorf("%w: integer at offset %d", ErrTruncated, r.pos)
	}
	n := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return n, nil
}

// readString reads UTF-16LE code units up to (and consuming) the 0x0000
// terminator and decodes them to a Go string. Surrogate pairs collapse to
// single scalar values during decoding.
func (r *reader) readString() (string, error) {
	start := r.pos
	for {
		unit, err := r.readUint16()
		if err != nil {
			return "", err
		}
		if unit == 0 {
			break
		}
	}
	raw := r.data[start : r.pos-2]
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	utf8, err := dec.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid UTF-16 at offset %d", ErrBadRecord, start)
	}
	return string(utf8), nil
}

// readEntry reads one tagged entry.
func (r *reader) readEntry() (entry, error) {
	tag, err := r.readByte()
	if err != nil {
		return entry{}, err
	}
	switch tag {
	case tagEmpty:
		return entry{tag: tagEmpty}, nil
	case tagByte:
		b, err := r.readByte()
		if err != nil {
			return entry{}, err
		}
		return entry{tag: tagByte, b: b}, nil
	case tagBool:
		b, err := r.readByte()
		if err != nil {
			return entry{}, err
		}
		return entry{tag: tagBool, flag: b != 0}, nil
	case tagInt:
		n, err := r.readUint16()
		if err != nil {
			return entry{}, err
		}
		return entry{tag: tagInt, n: n}, nil
	case tagString:
		s, err := r.readString()
		if err != nil {
			return entry{}, err
		}
		return entry{tag: tagString, s: s}, nil
	}
	return entry{}, fmt.Errorf("%w: 0x%02x at offset %d", ErrBadTag, tag, r.pos-1)
}
