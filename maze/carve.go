package maze

import "math/rand"

// carveFrame is one cell of the depth-first traversal together with the
// shuffled order in which its neighbor directions are still to be tried.
type carveFrame struct {
	pos  CellPosition
	dirs [4]CellPosition
	next int
}

func newCarveFrame(pos CellPosition, rng *rand.Rand) *carveFrame {
	f := &carveFrame{
		pos:  pos,
		dirs: [4]CellPosition{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}},
	}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// Carve opens a spanning tree of passages through a fully-walled grid.
//
// Starting from a uniformly random cell, it walks the grid depth-first,
// trying the four neighbor directions of each cell in a freshly shuffled
// order and opening the wall to every unvisited in-bounds neighbor before
// descending into it. Every cell is entered exactly once, so exactly
// N²-1 interior walls are cleared and the open passages form a spanning
// tree over the cells.
//
// The traversal keeps its own stack of frames rather than recursing, so
// the worst case of a single snaking path through a large grid cannot
// exhaust the call stack.
func Carve(g *WallGrid, rng *rand.Rand) {
	visited := make([][]bool, g.size)
	for i := range visited {
		visited[i] = make([]bool, g.size)
	}

	start := CellPosition{Row: rng.Intn(g.size), Col: rng.Intn(g.size)}
	visited[start.Row][start.Col] = true

	stack := []*carveFrame{newCarveFrame(start, rng)}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next == len(f.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := f.dirs[f.next]
		f.next++

		nextRow, nextCol := f.pos.Row+d.Row, f.pos.Col+d.Col
		if !g.InBound(nextRow, nextCol) || visited[nextRow][nextCol] {
			continue
		}

		openWall(g, f.pos, d)
		visited[nextRow][nextCol] = true
		stack = append(stack, newCarveFrame(CellPosition{Row: nextRow, Col: nextCol}, rng))
	}
}

// openWall clears the wall between a cell and its neighbor one step away
// in direction d.
func openWall(g *WallGrid, from CellPosition, d CellPosition) {
	switch {
	case d.Row == 1: // South
		g.horizontal[from.Row+1][from.Col] = false
	case d.Row == -1: // North
		g.horizontal[from.Row][from.Col] = false
	case d.Col == 1: // East
		g.vertical[from.Row][from.Col+1] = false
	default: // West
		g.vertical[from.Row][from.Col] = false
	}
}
