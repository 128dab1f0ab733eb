package egt

import "fmt"

// recordMarker starts every logical record ('M' for multitype).
const recordMarker = 'M'

// Record discriminators, per the EGT record format.
const (
	recordProperty = 'p' // (index, name, value)
	recordCounts   = 't' // (symbols, charsets, rules, DFA, LALR, groups)
	recordCharSet  = 'c' // (index, plane, range-count, empty, range-pairs…)
	recordSymbol   = 'S' // (index, name, kind)
	recordGroup    = 'g' // (index, name, container, start, end, advance, ending, empty, nesting-count, nested…)
	recordRule     = 'R' // (index, head, empty, body-symbol-indices…)
	recordInitial  = 'I' // (DFA start, LALR start)
	recordDFA      = 'D' // (index, accept, accept-symbol, empty, edge-triples…)
	recordLALR     = 'L' // (index, empty, action-quads…)
)

func recordName(kind byte) string {
	switch kind {
	case recordProperty:
		return "Property"
	case recordCounts:
		return "TableCounts"
	case recordCharSet:
		return "CharacterSet"
	case recordSymbol:
		return "Symbol"
	case recordGroup:
		return "Group"
	case recordRule:
		return "Rule"
	case recordInitial:
		return "InitialStates"
	case recordDFA:
		return "DFAState"
	case recordLALR:
		return "LALRState"
	}
	return fmt.Sprintf("0x%02x", kind)
}

// record is a decoded logical record: a discriminator plus the payload
// entries (the discriminator entry itself is stripped).
type record struct {
	kind    byte
	entries []entry
}

// readRecord decodes one logical record: the 'M' marker, a 2-byte entry
// count, a byte-tagged discriminator entry, and the payload entries.
func (r *reader) readRecord() (*record, error) {
	marker, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if marker != recordMarker {
		return nil, fmt.Errorf("%w: expected record marker 'M', got 0x%02x at offset %d",
			ErrBadRecord, marker, r.pos-1)
	}
	count, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: empty record at offset %d", ErrBadRecord, r.pos-2)
	}
	disc, err := r.readEntry()
	if err != nil {
		return nil, err
	}
	if disc.tag != tagByte {
		return nil, fmt.Errorf("%w: record discriminator is %s, want a byte entry",
			ErrBadRecord, disc)
	}
	switch disc.b {
	case recordProperty, recordCounts, recordCharSet, recordSymbol,
		recordGroup, recordRule, recordInitial, recordDFA, recordLALR:
		// known
	default:
		return nil, fmt.Errorf("%w: unknown record discriminator 0x%02x",
			ErrBadRecord, disc.b)
	}
	rec := &record{kind: disc.b, entries: make([]entry, 0, count-1)}
	for i := uint16(1); i < count; i++ {
		e, err := r.readEntry()
		if err != nil {
			return nil, err
		}
		rec.entries = append(rec.entries, e)
	}
	return rec, nil
}

// Typed positional accessors. A tag mismatch means the file is corrupt, not
// merely truncated, and surfaces as ErrBadRecord.

func (rec *record) len() int {
	return len(rec.entries)
}

func (rec *record) intAt(i int) (int, error) {
	if i >= len(rec.entries) {
		return 0, fmt.Errorf("%w: %s record has no entry %d", ErrBadRecord,
			recordName(rec.kind), i)
	}
	e := rec.entries[i]
	if e.tag != tagInt {
		return 0, fmt.Errorf("%w: %s record entry %d is %s, want integer",
			ErrBadRecord, recordName(rec.kind), i, e)
	}
	return int(e.n), nil
}

func (rec *record) stringAt(i int) (string, error) {
	if i >= len(rec.entries) {
		return "", fmt.Errorf("%w: %s record has no entry %d", ErrBadRecord,
			recordName(rec.kind), i)
	}
	e := rec.entries[i]
	if e.tag != tagString {
		return "", fmt.Errorf("%w: %s record entry %d is %s, want string",
			ErrBadRecord, recordName(rec.kind), i, e)
	}
	return e.s, nil
}

func (rec *record) boolAt(i int) (bool, error) {
	if i >= len(rec.entries) {
		return false, fmt.Errorf("%w: %s record has no entry %d", ErrBadRecord,
			recordName(rec.kind), i)
	}
	e := rec.entries[i]
	if e.tag != tagBool {
		return false, fmt.Errorf("%w: %s record entry %d is %s, want boolean",
			ErrBadRecord, recordName(rec.kind), i, e)
	}
	return e.flag, nil
}
