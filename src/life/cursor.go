package life

//Direction is a cursor motion direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

//Cursor tracks a position inside the grid bounds.
//It persists across pause/resume and edit sessions; only motion input
//moves it, and every move wraps modulo the grid extents.
type Cursor struct {
	Row, Col   int
	rows, cols int
}

//NewCursor places the cursor at the center of a width x height grid
func NewCursor(width, height int) *Cursor {
	return &Cursor{Row: height / 2, Col: width / 2, rows: height, cols: width}
}

//Move adds the deltas to the position and wraps each axis modulo the
//grid extent. Any integer delta works, including multi-wrap jumps.
func (c *Cursor) Move(dRow, dCol int) {
	c.Row = wrap(c.Row+dRow, c.rows)
	c.Col = wrap(c.Col+dCol, c.cols)
}

//MotionParser accumulates the digits of a count-prefixed motion.
//One or more digits followed by a direction key move the cursor by the
//accumulated base-10 count; digits followed by anything else are
//silently dropped, with no movement.
type MotionParser struct {
	digits []rune
}

//Push appends one typed digit to the pending count
func (p *MotionParser) Push(d rune) {
	if d >= '0' && d <= '9' {
		p.digits = append(p.digits, d)
	}
}

//Pending returns the digits typed so far, for the status display
func (p *MotionParser) Pending() string { return string(p.digits) }

//Discard drops any pending digits without moving
func (p *MotionParser) Discard() { p.digits = p.digits[:0] }

//Apply resolves the pending count against a direction key and moves
//the cursor. With no pending digits the count is 1.
func (p *MotionParser) Apply(c *Cursor, dir Direction) {
	count := 1
	if len(p.digits) > 0 {
		count = 0
		for _, d := range p.digits {
			count = count*10 + int(d-'0')
		}
		p.digits = p.digits[:0]
	}
	switch dir {
	case Up:
		c.Move(-count, 0)
	case Down:
		c.Move(count, 0)
	case Left:
		c.Move(0, -count)
	case Right:
		c.Move(0, count)
	}
}
