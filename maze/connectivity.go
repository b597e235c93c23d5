package maze

// FullyConnected reports whether every cell of the grid is reachable from
// cell (0, 0) through open passages. It performs a breadth-first traversal
// and never mutates the wall state, so repeated calls on the same grid
// always agree.
func FullyConnected(g *WallGrid) bool {
	visited := make([][]bool, g.size)
	for i := range visited {
		visited[i] = make([]bool, g.size)
	}

	queue := []CellPosition{{Row: 0, Col: 0}}
	visited[0][0] = true
	count := 1

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		// North
		if cell.Row > 0 && !g.horizontal[cell.Row][cell.Col] && !visited[cell.Row-1][cell.Col] {
			visited[cell.Row-1][cell.Col] = true
			queue = append(queue, CellPosition{Row: cell.Row - 1, Col: cell.Col})
			count++
		}
		// South
		if cell.Row < g.size-1 && !g.horizontal[cell.Row+1][cell.Col] && !visited[cell.Row+1][cell.Col] {
			visited[cell.Row+1][cell.Col] = true
			queue = append(queue, CellPosition{Row: cell.Row + 1, Col: cell.Col})
			count++
		}
		// West
		if cell.Col > 0 && !g.vertical[cell.Row][cell.Col] && !visited[cell.Row][cell.Col-1] {
			visited[cell.Row][cell.Col-1] = true
			queue = append(queue, CellPosition{Row: cell.Row, Col: cell.Col - 1})
			count++
		}
		// East
		if cell.Col < g.size-1 && !g.vertical[cell.Row][cell.Col+1] && !visited[cell.Row][cell.Col+1] {
			visited[cell.Row][cell.Col+1] = true
			queue = append(queue, CellPosition{Row: cell.Row, Col: cell.Col + 1})
			count++
		}
	}

	return count == g.size*g.size
}
