package textbuf

import "github.com/dshills/textcore/textpos"

// Offset converts a position to a flat byte offset into the buffer
// content. Line 0 maps directly to the column; for later lines the
// offset is one past the (line-1)-th newline plus the column.
//
// The column is never checked against the target line's length, so an
// overshoot column maps into the following line's content. Callers
// that need the virtual-column behavior rely on this.
//
// ErrPositionOutOfRange is returned when the buffer has fewer lines
// than pos.Line requires.
func (b Buffer) Offset(pos textpos.Position) (int, error) {
	if pos.Line < 0 || pos.Col < 0 {
		return 0, ErrPositionOutOfRange
	}
	if pos.Line == 0 {
		return pos.Col, nil
	}

	seen := 0
	for i := 0; i < len(b.text); i++ {
		if b.text[i] != '\n' {
			continue
		}
		seen++
		if seen == pos.Line {
			return i + pos.Col + 1, nil
		}
	}
	return 0, ErrPositionOutOfRange
}

// clampOffset bounds an offset to the valid slice range. Offsets past
// the end can arise from overshoot columns, which Offset deliberately
// does not reject.
func (b Buffer) clampOffset(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.text) {
		return len(b.text)
	}
	return i
}
