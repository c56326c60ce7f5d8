package textbuf

import "errors"

// Errors returned by buffer operations.
var (
	// ErrPositionOutOfRange indicates a position names a line past the
	// end of the buffer.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrLineOutOfRange indicates a line index past the last line.
	ErrLineOutOfRange = errors.New("line index out of range")
)
