package parsec

import "fmt"

// Location is an opaque, totally ordered marker into a parse session's
// input. Two Locations are equal iff they refer to the same position in
// the same input; comparing Locations produced by different sessions is
// meaningless but never panics.
type Location struct {
	offset int
	line   int
	column int
}

// NewLocation constructs a Location directly from an offset, a
// one-based line number, and a one-based column number. This is the
// seam a non-core Source implementation (one that carries its own
// position bookkeeping, such as a token stream fed by an external
// lexer) uses to report real positions instead of a bare sequential
// index.
func NewLocation(offset, line, column int) Location {
	return Location{offset: offset, line: line, column: column}
}

// Offset returns the zero-based element offset of the Location into its
// input sequence (byte offset for string-backed input, index for
// slice-backed input).
func (l Location) Offset() int {
	return l.offset
}

// Line returns the one-based line number of the Location. Slice-backed
// sources that never observed a string have no notion of lines and
// always report 1.
func (l Location) Line() int {
	return l.line
}

// Column returns the one-based column number of the Location. Slice-backed
// sources always report 1.
func (l Location) Column() int {
	return l.column
}

// Compare returns -1, 0, or 1 according to whether l is before, equal
// to, or after other. Comparison is O(1): both Locations carry a plain
// integer offset.
func (l Location) Compare(other Location) int {
	switch {
	case l.offset < other.offset:
		return -1
	case l.offset > other.offset:
		return 1
	default:
		return 0
	}
}

// Before reports whether l occurs strictly before other.
func (l Location) Before(other Location) bool {
	return l.Compare(other) < 0
}

// Equal reports whether l and other refer to the same position.
func (l Location) Equal(other Location) bool {
	return l.offset == other.offset
}

// String renders the Location for diagnostics.
func (l Location) String() string {
	if l.line <= 1 && l.column <= 1 {
		return fmt.Sprintf("offset %d", l.offset)
	}

	return fmt.Sprintf("line %d, column %d (offset %d)", l.line, l.column, l.offset)
}
