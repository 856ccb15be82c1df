package life

//Advance computes the next generation of g under the classic rule:
//a live cell survives with 2 or 3 live neighbors, a dead cell is born
//with exactly 3, everything else dies or stays dead.
//All neighbor counts read the pre-advance grid and the result is
//materialized into a fresh buffer, so no cell ever observes a
//half-updated neighborhood within the same generation.
//The birth and death counts are returned so the caller can maintain its
//live counter without a rescan.
func Advance(g *Grid) (next *Grid, births, deaths int) {
	next = &Grid{width: g.width, height: g.height, cells: allocCells(g.width, g.height)}
	g.Walk(func(row, col int, alive bool) {
		n := g.NeighborCount(row, col)
		live := n == 3 || (alive && n == 2)
		next.cells[row][col] = live
		if live && !alive {
			births++
		} else if alive && !live {
			deaths++
		}
	})
	return next, births, deaths
}
