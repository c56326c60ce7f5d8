package textbuf

import "github.com/rivo/uniseg"

// Editing operations work on single runes. View layers that need
// user-visible character counts or cell widths should measure with
// these helpers instead of len.

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// DisplayWidth returns the monospace cell width of s.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// LineWidth returns the monospace cell width of a specific line.
func (b Buffer) LineWidth(line int) (int, error) {
	text, err := b.LineText(line)
	if err != nil {
		return 0, err
	}
	return uniseg.StringWidth(text), nil
}
