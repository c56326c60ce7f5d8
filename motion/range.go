package motion

import (
	"unicode/utf8"

	"github.com/dshills/textcore/textbuf"
	"github.com/dshills/textcore/textpos"
)

// GroupRange expands pos to the word or non-word group surrounding it
// and returns the group's start and end positions. The word class is
// tried first, so a position touching both classes expands to the
// word.
//
// The decision looks at the three runes before, at, and after the
// position; neighbors past the buffer edges are treated as absent.
// ErrNoGroup is returned when the position sits on whitespace with no
// adjacent group, ErrPositionOutOfRange when pos cannot be resolved.
func GroupRange(pos textpos.Position, buf textbuf.Buffer) (textpos.Position, textpos.Position, error) {
	i, err := buf.Offset(pos)
	if err != nil {
		return pos, pos, err
	}
	text := buf.String()
	i = clampTo(i, len(text))

	var before, cur, after rune
	var haveBefore, haveCur, haveAfter bool
	curSize := 0

	if r, size := utf8.DecodeLastRuneInString(text[:i]); size > 0 {
		before, haveBefore = r, true
	}
	if r, size := utf8.DecodeRuneInString(text[i:]); size > 0 {
		cur, haveCur, curSize = r, true, size
	}
	if haveCur {
		if r, size := utf8.DecodeRuneInString(text[i+curSize:]); size > 0 {
			after, haveAfter = r, true
		}
	}

	// End of the run when the current rune is its last member.
	afterCur := pos.NextCol()
	if curSize > 1 {
		afterCur = pos.WithCol(pos.Col + curSize)
	}

	for _, p := range []func(rune) bool{textpos.IsWord, textpos.IsNonWord} {
		by := haveBefore && p(before)
		cy := haveCur && p(cur)
		ay := haveAfter && p(after)

		switch {
		case by && cy && ay:
			start, err := GroupStart(pos, buf)
			if err != nil {
				return pos, pos, err
			}
			end, err := GroupEnd(pos, buf)
			if err != nil {
				return pos, pos, err
			}
			return start, end, nil

		case !by && cy && ay:
			end, err := GroupEnd(pos, buf)
			if err != nil {
				return pos, pos, err
			}
			return pos, end, nil

		case by && cy && !ay:
			start, err := GroupStart(pos, buf)
			if err != nil {
				return pos, pos, err
			}
			return start, afterCur, nil

		case by && !cy:
			start, err := GroupStart(pos, buf)
			if err != nil {
				return pos, pos, err
			}
			return start, pos, nil

		case !by && cy && !ay:
			return pos, afterCur, nil
		}
	}

	return pos, pos, ErrNoGroup
}
