package motion

import (
	"errors"
	"testing"

	"github.com/dshills/textcore/textbuf"
)

func TestGroupRangeMidWord(t *testing.T) {
	buf := textbuf.FromString("xyz")

	start, end, err := GroupRange(pos(0, 1), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 0) || end != pos(0, 3) {
		t.Errorf("GroupRange = %v, %v, want (0:0), (0:3)", start, end)
	}
}

func TestGroupRangeAtWordStart(t *testing.T) {
	buf := textbuf.FromString(" ab ")

	start, end, err := GroupRange(pos(0, 1), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 1) || end != pos(0, 3) {
		t.Errorf("GroupRange = %v, %v, want (0:1), (0:3)", start, end)
	}
}

func TestGroupRangeAtWordEnd(t *testing.T) {
	buf := textbuf.FromString(" ab ")

	start, end, err := GroupRange(pos(0, 2), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 1) || end != pos(0, 3) {
		t.Errorf("GroupRange = %v, %v, want (0:1), (0:3)", start, end)
	}
}

func TestGroupRangeJustPastWord(t *testing.T) {
	buf := textbuf.FromString("ab ")

	// The position sits on the space; the word before it is the group.
	start, end, err := GroupRange(pos(0, 2), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 0) || end != pos(0, 2) {
		t.Errorf("GroupRange = %v, %v, want (0:0), (0:2)", start, end)
	}
}

func TestGroupRangeSingleCharWord(t *testing.T) {
	buf := textbuf.FromString(" a ")

	start, end, err := GroupRange(pos(0, 1), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 1) || end != pos(0, 2) {
		t.Errorf("GroupRange = %v, %v, want (0:1), (0:2)", start, end)
	}
}

func TestGroupRangeNonWordFallback(t *testing.T) {
	buf := textbuf.FromString(" ++ ")

	start, end, err := GroupRange(pos(0, 1), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 1) || end != pos(0, 3) {
		t.Errorf("GroupRange = %v, %v, want (0:1), (0:3)", start, end)
	}
}

// When the position touches both a word and a non-word group, the word
// class wins.
func TestGroupRangeWordClassPriority(t *testing.T) {
	buf := textbuf.FromString("a+b")

	start, end, err := GroupRange(pos(0, 1), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 0) || end != pos(0, 1) {
		t.Errorf("GroupRange = %v, %v, want (0:0), (0:1)", start, end)
	}
}

func TestGroupRangeWholeBuffer(t *testing.T) {
	buf := textbuf.FromString("word")

	start, end, err := GroupRange(pos(0, 2), buf)
	if err != nil {
		t.Fatalf("GroupRange failed: %v", err)
	}
	if start != pos(0, 0) || end != pos(0, 4) {
		t.Errorf("GroupRange = %v, %v, want (0:0), (0:4)", start, end)
	}
}

func TestGroupRangeOnWhitespace(t *testing.T) {
	buf := textbuf.FromString("a  b")

	// Both neighbors of the position are whitespace or out of reach of
	// the neighbor triple; no group matches.
	_, _, err := GroupRange(pos(0, 2), buf)
	if !errors.Is(err, ErrNoGroup) {
		t.Errorf("expected ErrNoGroup, got %v", err)
	}
}

func TestGroupRangeEmptyBuffer(t *testing.T) {
	buf := textbuf.FromString("")

	_, _, err := GroupRange(pos(0, 0), buf)
	if !errors.Is(err, ErrNoGroup) {
		t.Errorf("expected ErrNoGroup, got %v", err)
	}
}

func TestGroupRangeInvalidPosition(t *testing.T) {
	buf := textbuf.FromString("word")

	_, _, err := GroupRange(pos(3, 0), buf)
	if !errors.Is(err, textbuf.ErrPositionOutOfRange) {
		t.Errorf("expected ErrPositionOutOfRange, got %v", err)
	}
}
