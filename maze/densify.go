package maze

import "math/rand"

// Densify re-adds up to want interior walls to a connected grid without
// ever disconnecting it. Every currently open interior wall position is a
// candidate; candidates are visited in a uniformly shuffled order, each one
// tentatively set and kept only if the grid still passes the connectivity
// check, otherwise reverted. Returns the number of walls actually added,
// which is less than want when no further wall fits.
//
// The acceptance is greedy and order-dependent: it makes no attempt to find
// an arrangement that would maximize the number of addable walls.
func Densify(g *WallGrid, want int, rng *rand.Rand) int {
	if want <= 0 {
		return 0
	}

	candidates := g.OpenInteriorWalls()
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	added := 0
	for _, w := range candidates {
		if added >= want {
			break
		}

		g.SetWall(w.Orientation, w.Row, w.Col, true)
		if FullyConnected(g) {
			added++
		} else {
			g.SetWall(w.Orientation, w.Row, w.Col, false)
		}
	}

	return added
}
