package textbuf

import (
	"unicode/utf8"

	"github.com/dshills/textcore/textpos"
)

// AutocloseMap maps an opening delimiter to its matching closing
// string. It is supplied per call, not stored on the buffer.
type AutocloseMap map[string]string

// Insert inserts text at pos and returns the new buffer.
//
// When text is an opening delimiter in pairs and neither the rune
// immediately before nor the rune at the insertion point is a word
// character, the matching closing string is inserted as well. Typing
// adjacent to identifier-like text suppresses the autoclose so words
// are not corrupted.
func (b Buffer) Insert(pos textpos.Position, text string, pairs AutocloseMap) (Buffer, error) {
	i, err := b.Offset(pos)
	if err != nil {
		return b, err
	}
	i = b.clampOffset(i)

	ins := text
	if closing, ok := pairs[text]; ok && !b.wordAdjacent(i) {
		ins = text + closing
	}
	return b.with(b.text[:i] + ins + b.text[i:]), nil
}

// wordAdjacent reports whether the rune immediately before or at
// offset i is a word character.
func (b Buffer) wordAdjacent(i int) bool {
	if r, size := utf8.DecodeLastRuneInString(b.text[:i]); size > 0 && textpos.IsWord(r) {
		return true
	}
	if r, size := utf8.DecodeRuneInString(b.text[i:]); size > 0 && textpos.IsWord(r) {
		return true
	}
	return false
}

// Replace replaces the text between two positions with text. The
// positions may arrive in either order; they are sorted before the
// splice.
func (b Buffer) Replace(a, c textpos.Position, text string) (Buffer, error) {
	lo, hi := textpos.Order(a, c)

	s, err := b.Offset(lo)
	if err != nil {
		return b, err
	}
	e, err := b.Offset(hi)
	if err != nil {
		return b, err
	}

	s = b.clampOffset(s)
	e = b.clampOffset(e)
	if s > e {
		// Overshoot columns can invert raw offsets even after the
		// positions themselves are ordered.
		s, e = e, s
	}
	return b.with(b.text[:s] + text + b.text[e:]), nil
}

// RemoveBefore deletes the single rune immediately before pos. One
// rune, not one grapheme cluster: a combining sequence loses only its
// last code point. At the very start of the buffer there is nothing to
// delete and the buffer is returned unchanged.
func (b Buffer) RemoveBefore(pos textpos.Position) (Buffer, error) {
	i, err := b.Offset(pos)
	if err != nil {
		return b, err
	}
	i = b.clampOffset(i)
	if i == 0 {
		return b, nil
	}

	_, size := utf8.DecodeLastRuneInString(b.text[:i])
	return b.with(b.text[:i-size] + b.text[i:]), nil
}
