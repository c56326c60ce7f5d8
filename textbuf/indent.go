package textbuf

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/textcore/textpos"
)

// Indent inserts alignment spaces at pos so that text after the
// insertion point lands on the next multiple of the indent size. The
// measured width is the rune count of the line content left of pos.Col.
// An already aligned width receives a full indent of padding, so the
// padding is always in [1, indentSize]. Returns the new buffer and the
// updated column.
func (b Buffer) Indent(pos textpos.Position) (Buffer, int, error) {
	start, err := b.Offset(pos.StartOfLine())
	if err != nil {
		return b, pos.Col, err
	}
	start = b.clampOffset(start)
	at := b.clampOffset(start + pos.Col)

	w := utf8.RuneCountInString(b.text[start:at])
	pad := b.indentSize - w%b.indentSize

	nb := b.with(b.text[:at] + strings.Repeat(" ", pad) + b.text[at:])
	return nb, pos.Col + pad, nil
}

// Deindent removes leading indentation from the line containing pos.
// Exactly the first indentSize characters of the line are inspected;
// a line shorter than indentSize ends the window at its newline. Every
// space found in the window is counted, left to right, without
// stopping at the first non-space. Tabs are never counted, so
// tab-indented lines do not deindent. That many characters are then
// removed from the line start.
//
// Returns the new buffer and the updated column pos.Col - removed,
// which is not clamped and may go negative when pos.Col was inside the
// removed run.
func (b Buffer) Deindent(pos textpos.Position) (Buffer, int, error) {
	start, err := b.Offset(pos.StartOfLine())
	if err != nil {
		return b, pos.Col, err
	}
	start = b.clampOffset(start)

	removed := 0
	i := start
	for n := 0; n < b.indentSize && i < len(b.text); n++ {
		r, size := utf8.DecodeRuneInString(b.text[i:])
		if r == '\n' {
			// The window ends with the line; a short line must not
			// expose the next line's indentation.
			break
		}
		if r == ' ' {
			removed++
		}
		i += size
	}

	end := start
	for n := 0; n < removed && end < len(b.text); n++ {
		_, size := utf8.DecodeRuneInString(b.text[end:])
		end += size
	}

	nb := b.with(b.text[:start] + b.text[end:])
	return nb, pos.Col - removed, nil
}
