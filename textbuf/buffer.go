package textbuf

import (
	"io"
	"strings"
)

// DefaultIndentSize is the alignment unit used by Indent and Deindent
// when no option overrides it.
const DefaultIndentSize = 2

// Buffer is an immutable snapshot of text content. All edit operations
// return a new Buffer value; the original is never modified. This makes
// snapshots cheap to retain (for undo stacks) and safe to read from
// multiple goroutines without locking.
//
// Lines are separated by '\n'. The separator is not stored as a
// distinct entity; line boundaries are computed on demand.
type Buffer struct {
	text       string
	indentSize int
}

// New creates an empty buffer.
func New(opts ...Option) Buffer {
	b := Buffer{indentSize: DefaultIndentSize}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// FromString creates a buffer with initial content.
func FromString(text string, opts ...Option) Buffer {
	b := New(opts...)
	b.text = text
	return b
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader, opts ...Option) (Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Buffer{}, err
	}
	b := New(opts...)
	b.text = string(data)
	return b, nil
}

// with returns a copy of b holding different text, preserving the
// buffer's configuration.
func (b Buffer) with(text string) Buffer {
	b.text = text
	return b
}

// String returns the full buffer content.
func (b Buffer) String() string {
	return b.text
}

// Len returns the total byte length of the buffer.
func (b Buffer) Len() int {
	return len(b.text)
}

// IsEmpty returns true if the buffer contains no text.
func (b Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// IndentSize returns the buffer's alignment unit.
func (b Buffer) IndentSize() int {
	return b.indentSize
}

// Lines splits the content on '\n' into an ordered slice of line
// strings. Empty segments are preserved, so a trailing newline yields
// a final empty line.
func (b Buffer) Lines() []string {
	return strings.Split(b.text, "\n")
}

// LineCount returns the number of lines (newlines + 1).
func (b Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

// LineText returns the text of a specific line (without newline).
func (b Buffer) LineText(line int) (string, error) {
	lines := b.Lines()
	if line < 0 || line >= len(lines) {
		return "", ErrLineOutOfRange
	}
	return lines[line], nil
}

// LineLen returns the length of a specific line in bytes (without
// newline).
func (b Buffer) LineLen(line int) (int, error) {
	text, err := b.LineText(line)
	if err != nil {
		return 0, err
	}
	return len(text), nil
}
