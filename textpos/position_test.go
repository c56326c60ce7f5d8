package textpos

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 2}, Position{1, 2}, 0},
		{"earlier line", Position{0, 9}, Position{1, 0}, -1},
		{"later line", Position{2, 0}, Position{1, 9}, 1},
		{"same line earlier col", Position{1, 1}, Position{1, 2}, -1},
		{"same line later col", Position{1, 3}, Position{1, 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPositionBeforeAfter(t *testing.T) {
	a := Position{0, 5}
	b := Position{1, 0}

	if !a.Before(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("%v should be after %v", b, a)
	}
	if a.After(b) || b.Before(a) {
		t.Error("ordering should not be symmetric")
	}
}

func TestOrder(t *testing.T) {
	a := Position{2, 1}
	b := Position{0, 7}

	lo, hi := Order(a, b)
	if lo != b || hi != a {
		t.Errorf("Order(%v, %v) = %v, %v, want %v, %v", a, b, lo, hi, b, a)
	}

	// Commutative as a set.
	lo2, hi2 := Order(b, a)
	if lo != lo2 || hi != hi2 {
		t.Errorf("Order not commutative: got (%v, %v) and (%v, %v)", lo, hi, lo2, hi2)
	}

	if lo.After(hi) {
		t.Errorf("Order returned lo %v after hi %v", lo, hi)
	}
}

func TestOrderEqual(t *testing.T) {
	p := Position{3, 3}
	lo, hi := Order(p, p)
	if lo != p || hi != p {
		t.Errorf("Order(%v, %v) = %v, %v", p, p, lo, hi)
	}
}

func TestNextCol(t *testing.T) {
	p := Position{1, 4}
	if got := p.NextCol(); got != (Position{1, 5}) {
		t.Errorf("NextCol() = %v, want (1:5)", got)
	}
}

func TestPrevCol(t *testing.T) {
	p := Position{1, 4}
	if got := p.PrevCol(); got != (Position{1, 3}) {
		t.Errorf("PrevCol() = %v, want (1:3)", got)
	}

	// Clamps at column 0.
	z := Position{2, 0}
	if got := z.PrevCol(); got != z {
		t.Errorf("PrevCol() at column 0 = %v, want %v", got, z)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{3, 14}
	if got := p.String(); got != "(3:14)" {
		t.Errorf("String() = %q, want %q", got, "(3:14)")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{' ', ClassWhitespace},
		{'\t', ClassWhitespace},
		{'\n', ClassWhitespace},
		{'(', ClassNonWord},
		{'-', ClassNonWord},
		{'…', ClassNonWord},
		{'`', ClassNonWord},
		{'\\', ClassNonWord},
		{'"', ClassNonWord},
		{'a', ClassWord},
		{'Z', ClassWord},
		{'0', ClassWord},
		{'_', ClassWord}, // underscore is a word character
		{'é', ClassWord},
	}

	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestClassesAreDisjoint(t *testing.T) {
	sample := []rune(" \t\n()-_azAZ09…`/\\\"'~")
	for _, r := range sample {
		count := 0
		if IsSpace(r) {
			count++
		}
		if IsNonWord(r) {
			count++
		}
		if IsWord(r) {
			count++
		}
		if count != 1 {
			t.Errorf("rune %q is in %d classes, want exactly 1", r, count)
		}
	}
}
