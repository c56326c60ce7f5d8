// Package textbuf provides an immutable text buffer addressed by
// line/column positions. It is the editing core consumed by a
// higher-level editor command and motion layer.
//
// The package provides:
//
//   - Value-typed buffers: every edit returns a new Buffer, the
//     original is never modified
//   - Position-to-offset mapping between line/column coordinates and
//     flat byte offsets
//   - Coordinate-addressed edits: Insert (with autoclose pairs),
//     Replace, RemoveBefore
//   - Alignment arithmetic for Indent and Deindent
//   - Line helpers and grapheme-aware width measurement
//
// Basic usage:
//
//	buf := textbuf.FromString("hello world")
//
//	// Insert at line 0, column 5
//	buf, err := buf.Insert(textpos.Position{Line: 0, Col: 5}, ",", nil)
//
//	// Every prior value remains valid; callers may retain snapshots
//	// for undo without copying.
//
// Value Semantics:
//
// Buffer holds its text in an immutable string, so copying a Buffer is
// cheap and snapshots are free. Distinct snapshots may be read and
// transformed from multiple goroutines without locking. No operation
// blocks, so none take a context.
//
// Position Mapping:
//
// Offset resolves a textpos.Position to a byte offset. The line index
// is validated against the number of lines; the column deliberately is
// not validated against the line's length, so an overshoot column maps
// into the following line's content. Operations that cannot resolve a
// position return ErrPositionOutOfRange together with the input buffer,
// so callers can distinguish a rejected edit from one with no textual
// effect.
package textbuf
