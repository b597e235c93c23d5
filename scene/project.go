package scene

import (
	"errors"

	"github.com/beka-birhanu/maze-world-gen/maze"
)

// Default wall dimensions in meters.
const (
	DefaultWallHeight    = 0.5
	DefaultWallThickness = 0.05
)

// ErrInvalidCellSize indicates a non-positive cell size.
var ErrInvalidCellSize = errors.New("cell size must be positive")

// Projector maps a wall grid into wall descriptors for a given cell size.
type Projector struct {
	cellSize  float64
	height    float64
	thickness float64
}

// NewProjector creates a projector for square cells of cellSize meters,
// using the default wall height and thickness.
func NewProjector(cellSize float64) (*Projector, error) {
	if cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}

	return &Projector{
		cellSize:  cellSize,
		height:    DefaultWallHeight,
		thickness: DefaultWallThickness,
	}, nil
}

// CellSize returns the projector's cell size in meters.
func (p *Projector) CellSize() float64 {
	return p.cellSize
}

// Project converts every standing wall of the grid into a box descriptor.
// The maze is centered on the origin: a grid of N cells of size s spans
// [-N·s/2, N·s/2] on both axes. Horizontal walls run along x with footprint
// (cellSize × thickness), vertical walls run along y with footprint
// (thickness × cellSize); all sit height/2 above the ground plane.
// The output order is fixed (horizontal matrix first, then vertical, both
// row-major), so identical grids project to identical sequences.
func (p *Projector) Project(g *maze.WallGrid) []WallDescriptor {
	size := g.Size()
	halfExtent := float64(size) * p.cellSize / 2

	walls := make([]WallDescriptor, 0, 2*size*(size+1))

	for row := 0; row <= size; row++ {
		for col := 0; col < size; col++ {
			if !g.HasWall(maze.Horizontal, row, col) {
				continue
			}
			walls = append(walls, WallDescriptor{
				X:      -halfExtent + (float64(col)+0.5)*p.cellSize,
				Y:      -halfExtent + float64(row)*p.cellSize,
				Z:      p.height / 2,
				Length: p.cellSize,
				Width:  p.thickness,
				Height: p.height,
			})
		}
	}

	for row := 0; row < size; row++ {
		for col := 0; col <= size; col++ {
			if !g.HasWall(maze.Vertical, row, col) {
				continue
			}
			walls = append(walls, WallDescriptor{
				X:      -halfExtent + float64(col)*p.cellSize,
				Y:      -halfExtent + (float64(row)+0.5)*p.cellSize,
				Z:      p.height / 2,
				Length: p.thickness,
				Width:  p.cellSize,
				Height: p.height,
			})
		}
	}

	return walls
}
