package buffer

import "fmt"

// Position addresses a byte within a line.
// Both Line and Offset are 0-indexed.
type Position struct {
	Line   int // index into the line store
	Offset int // byte offset within the line
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Offset)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Offset == 0
}

// Ordered returns a and b sorted so the first is not after the second.
func Ordered(a, b Position) (Position, Position) {
	if a.After(b) {
		return b, a
	}
	return a, b
}
