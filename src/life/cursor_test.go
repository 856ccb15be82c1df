package life

import "testing"

func TestCursorStartsAtCenter(t *testing.T) {
	c := NewCursor(40, 15)
	if c.Row != 7 || c.Col != 20 {
		t.Errorf("start position: got (%d,%d), want (7,20)", c.Row, c.Col)
	}
}

func TestCursorMoveWraps(t *testing.T) {
	c := NewCursor(10, 8)
	c.Row, c.Col = 0, 0

	c.Move(-1, 0)
	if c.Row != 7 {
		t.Errorf("up from row 0: got row %d, want 7", c.Row)
	}
	c.Move(1, -1)
	if c.Row != 0 || c.Col != 9 {
		t.Errorf("left from col 0: got (%d,%d), want (0,9)", c.Row, c.Col)
	}
}

func TestCursorMoveByExtentIsIdentity(t *testing.T) {
	c := NewCursor(10, 8)
	c.Row, c.Col = 3, 4

	c.Move(8, 0)
	c.Move(0, 10)
	if c.Row != 3 || c.Col != 4 {
		t.Errorf("moving by a full extent: got (%d,%d), want (3,4)", c.Row, c.Col)
	}
	c.Move(-8, -10)
	if c.Row != 3 || c.Col != 4 {
		t.Errorf("moving by a negative full extent: got (%d,%d), want (3,4)", c.Row, c.Col)
	}
}

func TestMotionCountPrefix(t *testing.T) {
	cases := []struct {
		digits  string
		dir     Direction
		wantRow int
	}{
		{"3", Down, 3},
		{"6", Down, 6},
		{"10", Down, 2}, //10 mod 8
		{"", Down, 1},   //no prefix moves a single cell
		{"0", Down, 0},  //explicit zero is a no-op motion
	}
	for _, tc := range cases {
		c := NewCursor(8, 8)
		c.Row, c.Col = 0, 0
		var p MotionParser
		for _, d := range tc.digits {
			p.Push(d)
		}
		p.Apply(c, tc.dir)
		if c.Row != tc.wantRow {
			t.Errorf("%q+down from row 0: got row %d, want %d", tc.digits, c.Row, tc.wantRow)
		}
		if p.Pending() != "" {
			t.Errorf("%q+down: digits not consumed", tc.digits)
		}
	}
}

func TestMotionCountAppliesToColumns(t *testing.T) {
	c := NewCursor(8, 8)
	c.Row, c.Col = 0, 0
	var p MotionParser
	p.Push('1')
	p.Push('1')
	p.Apply(c, Left) //11 left of col 0 wraps to 5
	if c.Col != 5 || c.Row != 0 {
		t.Errorf("11+left from col 0: got (%d,%d), want (0,5)", c.Row, c.Col)
	}
}

func TestMotionMalformedPrefixIsDiscarded(t *testing.T) {
	c := NewCursor(8, 8)
	c.Row, c.Col = 0, 0
	var p MotionParser
	p.Push('4')
	p.Push('2')
	if p.Pending() != "42" {
		t.Fatalf("pending digits: got %q, want \"42\"", p.Pending())
	}
	p.Discard() //a non-direction key ends the motion with no movement
	if c.Row != 0 || c.Col != 0 {
		t.Errorf("discard moved the cursor to (%d,%d)", c.Row, c.Col)
	}
	p.Apply(c, Down) //the stale count must not leak into the next motion
	if c.Row != 1 {
		t.Errorf("after discard, down moved %d rows, want 1", c.Row)
	}
}

func TestMotionParserIgnoresNonDigits(t *testing.T) {
	var p MotionParser
	p.Push('x')
	p.Push('7')
	if p.Pending() != "7" {
		t.Errorf("pending: got %q, want \"7\"", p.Pending())
	}
}
