// Package motion computes word and non-word group boundaries for
// cursor motions and selection expansion.
//
// A group is a maximal run of characters sharing the word or non-word
// class (see textpos.Classify), bounded by whitespace, a class change,
// or the buffer edges. GroupEnd and GroupStart scan forward and
// backward from a position to the nearest group boundary; GroupRange
// expands a position to the group surrounding it.
//
// Scans skip leading whitespace and cross at most one newline: hitting
// a second newline stops the motion at the start of the blank line, so
// repeated motions step through empty lines one at a time.
//
// The scanner is an iterative cursor over the buffer's backing text.
// Backward scans decode runes from the end of the prefix directly, so
// they cost the same as forward scans with no reversal allocation.
package motion
