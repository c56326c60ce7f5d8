package textpos

import "fmt"

// Position represents a line and column position in a buffer.
// Both Line and Col are 0-indexed. Col is measured in bytes from the
// start of the line.
type Position struct {
	Line int // 0-indexed line number
	Col  int // 0-indexed column (byte offset within line)
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Order is line-major: lines compare first, columns break ties.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
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
	return p.Line == 0 && p.Col == 0
}

// Order returns the two positions sorted under the line-major order:
// the lesser first, the greater second. Order(a, b) and Order(b, a)
// return the same pair.
func Order(a, b Position) (Position, Position) {
	if a.After(b) {
		return b, a
	}
	return a, b
}

// NextCol returns the position one column to the right.
func (p Position) NextCol() Position {
	return Position{Line: p.Line, Col: p.Col + 1}
}

// PrevCol returns the position one column to the left, clamped at
// column 0.
func (p Position) PrevCol() Position {
	if p.Col == 0 {
		return p
	}
	return Position{Line: p.Line, Col: p.Col - 1}
}

// WithCol returns the position with the column replaced.
func (p Position) WithCol(col int) Position {
	return Position{Line: p.Line, Col: col}
}

// StartOfLine returns the position at column 0 of the same line.
func (p Position) StartOfLine() Position {
	return Position{Line: p.Line, Col: 0}
}
