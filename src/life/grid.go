package life

import "errors"

//ErrInvalidDimension is returned when a grid is constructed with a non-positive extent
var ErrInvalidDimension = errors.New("life: grid dimensions must be positive")

//Grid is the bounded toroidal cell field.
//Every coordinate passed to a method wraps modulo the extents, so an
//out-of-range access is structurally impossible.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

//NewGrid creates an all-dead grid with the given extents
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Grid{width: width, height: height, cells: allocCells(width, height)}, nil
}

//allocCells allocates the row slices over a single backing buffer
func allocCells(width, height int) [][]bool {
	rows := make([][]bool, height)
	b := make([]bool, width*height)
	for i := range rows {
		start := width * i
		rows[i] = b[start : start+width : start+width]
	}
	return rows
}

//Width returns the horizontal extent
func (g *Grid) Width() int { return g.width }

//Height returns the vertical extent
func (g *Grid) Height() int { return g.height }

//wrap reduces v modulo m into [0, m), for any integer v
func wrap(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

//Get returns the cell state at row, col
func (g *Grid) Get(row, col int) bool {
	return g.cells[wrap(row, g.height)][wrap(col, g.width)]
}

//Set stores the cell state at row, col and reports whether the stored
//value actually changed, so the caller can adjust the live counter
//exactly once per real flip
func (g *Grid) Set(row, col int, alive bool) (changed bool) {
	r, c := wrap(row, g.height), wrap(col, g.width)
	if g.cells[r][c] == alive {
		return false
	}
	g.cells[r][c] = alive
	return true
}

//NeighborCount sums the 8 toroidally wrapped neighbors of row, col,
//excluding the cell itself
func (g *Grid) NeighborCount(row, col int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			if i == 0 && j == 0 {
				continue
			}
			if g.cells[wrap(row+i, g.height)][wrap(col+j, g.width)] {
				n++
			}
		}
	}
	return n
}

//Clear kills every cell
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for i := range row {
			row[i] = false
		}
	}
}

//CountAlive recounts the live cells with a full scan.
//The session maintains its counter incrementally; this is the slow
//ground truth used by seeding and by the property tests.
func (g *Grid) CountAlive() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

//Walk calls cb for every cell in row-major order
func (g *Grid) Walk(cb func(row, col int, alive bool)) {
	for r := range g.cells {
		for c := range g.cells[r] {
			cb(r, c, g.cells[r][c])
		}
	}
}

//Snapshot returns a copy of the cell buffer for rendering
func (g *Grid) Snapshot() [][]bool {
	out := allocCells(g.width, g.height)
	for i := range g.cells {
		copy(out[i], g.cells[i])
	}
	return out
}
