package motion

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/textcore/textbuf"
	"github.com/dshills/textcore/textpos"
)

// Direction selects the scan order for group motions.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// group is the classification of the run currently being consumed.
type group uint8

const (
	groupNone group = iota
	groupWord
	groupNonWord
)

// Group scans in the given direction: Forward resolves to GroupEnd,
// Backward to GroupStart.
func Group(d Direction, pos textpos.Position, buf textbuf.Buffer) (textpos.Position, error) {
	if d == Backward {
		return GroupStart(pos, buf)
	}
	return GroupEnd(pos, buf)
}

// GroupEnd returns the position just past the word or non-word group
// at or after pos. ErrPositionOutOfRange is returned when pos names a
// line past the end of the buffer.
func GroupEnd(pos textpos.Position, buf textbuf.Buffer) (textpos.Position, error) {
	i, err := buf.Offset(pos)
	if err != nil {
		return pos, err
	}
	text := buf.String()
	return scanForward(text, clampTo(i, len(text)), pos), nil
}

// GroupStart returns the position of the start of the word or non-word
// group at or before pos. ErrPositionOutOfRange is returned when pos
// names a line past the end of the buffer.
func GroupStart(pos textpos.Position, buf textbuf.Buffer) (textpos.Position, error) {
	i, err := buf.Offset(pos)
	if err != nil {
		return pos, err
	}
	text := buf.String()
	return scanBackward(text, clampTo(i, len(text)), pos), nil
}

// scanForward walks text from byte offset i, threading pos along with
// the cursor. In the initial state it consumes whitespace and at most
// one newline; the first word or non-word rune fixes the group class,
// and the scan stops at the first rune outside that class.
func scanForward(text string, i int, pos textpos.Position) textpos.Position {
	state := groupNone
	newline := false

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch state {
		case groupNone:
			switch {
			case r == '\n':
				if newline {
					return pos
				}
				newline = true
				pos = textpos.Position{Line: pos.Line + 1, Col: 0}
			case textpos.IsSpace(r):
				pos = pos.WithCol(pos.Col + size)
			case textpos.IsNonWord(r):
				state = groupNonWord
				pos = pos.WithCol(pos.Col + size)
			default:
				state = groupWord
				pos = pos.WithCol(pos.Col + size)
			}

		case groupWord:
			if !textpos.IsWord(r) {
				return pos
			}
			pos = pos.WithCol(pos.Col + size)

		case groupNonWord:
			if !textpos.IsNonWord(r) {
				return pos
			}
			pos = pos.WithCol(pos.Col + size)
		}

		i += size
	}
	return pos
}

// scanBackward mirrors scanForward over the prefix text[:i], decoding
// runes from the end. Crossing a newline lands at the end of the
// previous line, whose length is recovered from the remaining prefix.
func scanBackward(text string, i int, pos textpos.Position) textpos.Position {
	state := groupNone
	newline := false

	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])

		switch state {
		case groupNone:
			switch {
			case r == '\n':
				if newline {
					return pos
				}
				newline = true
				pos = textpos.Position{Line: pos.Line - 1, Col: lineLenBefore(text, i-size)}
			case textpos.IsSpace(r):
				pos = stepBack(pos, size)
			case textpos.IsNonWord(r):
				state = groupNonWord
				pos = stepBack(pos, size)
			default:
				state = groupWord
				pos = stepBack(pos, size)
			}

		case groupWord:
			if !textpos.IsWord(r) {
				return pos
			}
			pos = stepBack(pos, size)

		case groupNonWord:
			if !textpos.IsNonWord(r) {
				return pos
			}
			pos = stepBack(pos, size)
		}

		i -= size
	}
	return pos
}

// lineLenBefore returns the byte length of the line ending at offset
// end: the distance back to the previous newline, or to the start of
// the text when there is none.
func lineLenBefore(text string, end int) int {
	if j := strings.LastIndexByte(text[:end], '\n'); j >= 0 {
		return end - j - 1
	}
	return end
}

// stepBack moves pos left by one rune. Columns derived from a
// resolved offset never go negative before the scan reaches a
// newline or the start of the text, so the clamp is defensive only,
// mirroring Position.PrevCol.
func stepBack(pos textpos.Position, size int) textpos.Position {
	col := pos.Col - size
	if col < 0 {
		col = 0
	}
	return pos.WithCol(col)
}

func clampTo(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
