// Package textpos provides position types and character classification
// for the textcore editing engine.
//
// A Position is a zero-indexed line/column pair with a line-major total
// order. Positions are meaningful only relative to a specific buffer
// snapshot; they are not portable across edits.
//
// The package also classifies runes into the three disjoint classes
// (whitespace, non-word, word) that drive group motions and autoclose
// decisions. A "group" is a maximal run of characters sharing the word
// or non-word class, bounded by whitespace, a class change, or the
// buffer edges.
package textpos
