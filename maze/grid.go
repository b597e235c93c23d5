/*
Package maze implements fully-connected square-grid maze generation.

It defines the `WallGrid` structure, two boolean wall matrices addressed by
orientation, row and column, together with the generation pipeline that
operates on it: a randomized depth-first carver that opens a spanning tree
of passages, a breadth-first connectivity check, and a densifier that
re-adds walls up to a requested count without ever disconnecting the grid.

The outer boundary walls of a grid are fixed: they are present at
construction and no stage of the pipeline touches them.
*/
package maze

import (
	"errors"
	"strings"
)

// ErrInvalidDimension indicates a requested grid size below one cell.
var ErrInvalidDimension = errors.New("grid size must be at least 1")

// Orientation selects one of the two wall matrices of a WallGrid.
type Orientation int

const (
	// Horizontal walls separate vertically adjacent cells. Entry (r, c)
	// stands between cell (r-1, c) and cell (r, c); rows 0 and N are the
	// outer boundary.
	Horizontal Orientation = iota

	// Vertical walls separate horizontally adjacent cells. Entry (r, c)
	// stands between cell (r, c-1) and cell (r, c); columns 0 and N are
	// the outer boundary.
	Vertical
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// WallPosition addresses a single entry of one of the wall matrices.
type WallPosition struct {
	Orientation Orientation
	Row         int
	Col         int
}

// WallGrid holds the wall state of an N×N maze: an (N+1)×N horizontal and
// an N×(N+1) vertical boolean matrix, true meaning a wall is present.
type WallGrid struct {
	size       int
	horizontal [][]bool
	vertical   [][]bool
}

// NewWallGrid creates a fully-walled grid of the given size.
func NewWallGrid(size int) (*WallGrid, error) {
	if size < 1 {
		return nil, ErrInvalidDimension
	}

	horizontal := make([][]bool, size+1)
	for r := range horizontal {
		horizontal[r] = make([]bool, size)
		for c := range horizontal[r] {
			horizontal[r][c] = true
		}
	}

	vertical := make([][]bool, size)
	for r := range vertical {
		vertical[r] = make([]bool, size+1)
		for c := range vertical[r] {
			vertical[r][c] = true
		}
	}

	return &WallGrid{
		size:       size,
		horizontal: horizontal,
		vertical:   vertical,
	}, nil
}

// Size returns the number of cells along one side of the grid.
func (g *WallGrid) Size() int {
	return g.size
}

// HasWall reports whether the wall at the given matrix position is present.
// An out-of-range position panics with an index-out-of-range failure; the
// coordinate math of callers is expected to be correct.
func (g *WallGrid) HasWall(o Orientation, row, col int) bool {
	if o == Horizontal {
		return g.horizontal[row][col]
	}
	return g.vertical[row][col]
}

// SetWall sets or clears the wall at the given matrix position. The
// generation pipeline only ever calls this for interior positions, keeping
// the outer boundary intact.
func (g *WallGrid) SetWall(o Orientation, row, col int, present bool) {
	if o == Horizontal {
		g.horizontal[row][col] = present
		return
	}
	g.vertical[row][col] = present
}

// InBound reports whether (row, col) addresses a cell of the grid.
func (g *WallGrid) InBound(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// InteriorWallCount returns the number of walls standing between cells,
// excluding the fixed outer boundary.
func (g *WallGrid) InteriorWallCount() int {
	count := 0
	for row := 1; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.horizontal[row][col] {
				count++
			}
		}
	}
	for row := 0; row < g.size; row++ {
		for col := 1; col < g.size; col++ {
			if g.vertical[row][col] {
				count++
			}
		}
	}
	return count
}

// OpenInteriorWalls lists every interior wall position that currently holds
// no wall, i.e. every open passage between two cells.
func (g *WallGrid) OpenInteriorWalls() []WallPosition {
	var open []WallPosition
	for row := 1; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if !g.horizontal[row][col] {
				open = append(open, WallPosition{Orientation: Horizontal, Row: row, Col: col})
			}
		}
	}
	for row := 0; row < g.size; row++ {
		for col := 1; col < g.size; col++ {
			if !g.vertical[row][col] {
				open = append(open, WallPosition{Orientation: Vertical, Row: row, Col: col})
			}
		}
	}
	return open
}

// String provides a textual representation of the wall grid.
func (g *WallGrid) String() string {
	var b strings.Builder

	for row := 0; row <= g.size; row++ {
		// Wall row
		b.WriteString("+")
		for col := 0; col < g.size; col++ {
			if g.horizontal[row][col] {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")

		if row == g.size {
			break
		}

		// Cell row
		for col := 0; col <= g.size; col++ {
			if g.vertical[row][col] {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
			if col < g.size {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
