package life

import "math/rand"

//RandomSeed populates g with a random target number of live cells drawn
//uniformly from [min, max], clamped to the grid area. Coordinates are
//picked uniformly; a pick landing on an already-live cell counts as a
//failure, and seeding stops early once width*height picks have failed.
//That bounds the whole loop to O(width*height) even when the target
//would saturate the grid.
//Returns the number of cells actually set alive.
func RandomSeed(g *Grid, rng *rand.Rand, min, max int) int {
	area := g.width * g.height
	if max > area {
		max = area
	}
	if min > max {
		min = max
	}
	target := min
	if max > min {
		target = min + rng.Intn(max-min+1)
	}

	placed := 0
	fails := 0
	for placed < target && fails < area {
		row, col := rng.Intn(g.height), rng.Intn(g.width)
		if g.cells[row][col] {
			fails++
			continue
		}
		g.cells[row][col] = true
		placed++
	}
	return placed
}
