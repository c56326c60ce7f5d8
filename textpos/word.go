package textpos

import "unicode"

// Class identifies which of the three disjoint character classes a
// rune belongs to. Every rune is in exactly one class.
type Class uint8

const (
	ClassWhitespace Class = iota // blank characters, including newline
	ClassNonWord                 // punctuation and delimiters
	ClassWord                    // everything else: letters, digits, connectors
)

// String returns the name of the class.
func (c Class) String() string {
	switch c {
	case ClassWhitespace:
		return "whitespace"
	case ClassNonWord:
		return "non-word"
	case ClassWord:
		return "word"
	default:
		return "unknown"
	}
}

// nonWordChars is the fixed set of runes treated as their own group
// class, distinct from both whitespace and word characters. Note that
// underscore is absent: it classifies as a word character.
const nonWordChars = "/\\()\"':,.;<>~!@#$%^&*|+=[]{}`?-…"

// Classify returns the class of r. Whitespace wins over the punctuation
// set, so a rune is never in two classes.
func Classify(r rune) Class {
	if unicode.IsSpace(r) {
		return ClassWhitespace
	}
	if IsNonWord(r) {
		return ClassNonWord
	}
	return ClassWord
}

// IsSpace returns true if r is a whitespace character (space, tab,
// newline, and other blank glyphs).
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsNonWord returns true if r is in the fixed punctuation set.
func IsNonWord(r rune) bool {
	for _, c := range nonWordChars {
		if r == c {
			return true
		}
	}
	return false
}

// IsWord returns true if r is neither whitespace nor punctuation.
// Letters, digits, underscores, and symbols outside the punctuation
// set all count as word characters.
func IsWord(r rune) bool {
	return !unicode.IsSpace(r) && !IsNonWord(r)
}
