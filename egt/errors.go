package egt

import "errors"

// Load failures. Every error returned by Load wraps exactly one of these
// sentinels, so clients can classify with errors.Is.
var (
	// ErrBadHeader flags a file that does not start with the EGT v5.0
	// header string.
	ErrBadHeader = errors.New("not a GOLD v5.0 table file")

	// ErrTruncated flags a buffer that ends in the middle of an entry.
	ErrTruncated = errors.New("table file truncated")

	// ErrBadTag flags an entry with an unknown type tag.
	ErrBadTag = errors.New("unknown entry tag")

	// ErrBadRecord flags a malformed logical record: a missing record
	// marker, an unknown record discriminator, or an entry of the wrong
	// type for its position.
	ErrBadRecord = errors.New("malformed logical record")

	// ErrBadSymbolKind flags a symbol record with a kind outside the
	// defined range.
	ErrBadSymbolKind = errors.New("unknown symbol kind")

	// ErrBadActionType flags an LALR action with a type outside the
	// defined range.
	ErrBadActionType = errors.New("unknown LALR action type")

	// ErrIndexOutOfRange flags a record referencing a table slot outside
	// the declared table counts, or a table record arriving before the
	// counts record.
	ErrIndexOutOfRange = errors.New("table index out of range")

	// ErrCountMismatch flags tables whose populated entry count disagrees
	// with the declared counts after all records are read.
	ErrCountMismatch = errors.New("table count mismatch")
)
