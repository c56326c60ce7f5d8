package motion

import "errors"

// ErrNoGroup indicates a position with no word or non-word group at or
// adjacent to it, such as the middle of a whitespace run.
var ErrNoGroup = errors.New("no group at position")
