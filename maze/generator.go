package maze

import (
	"errors"
	"math/rand"
)

// ErrNegativeMinWalls indicates a negative minimum interior wall count.
var ErrNegativeMinWalls = errors.New("minimum wall count must not be negative")

// Report summarizes one generation run.
type Report struct {
	CarvedInteriorWalls int `bson:"carvedInteriorWalls" json:"carved_interior_walls"` // interior walls standing after carving
	WallsRequested      int `bson:"wallsRequested" json:"walls_requested"`            // additional walls the densifier was asked for
	WallsAdded          int `bson:"wallsAdded" json:"walls_added"`                    // additional walls it managed to place
	InteriorWalls       int `bson:"interiorWalls" json:"interior_walls"`              // final interior wall count
}

// Partial reports whether fewer walls than requested could be added without
// disconnecting the grid. This is a warning condition, not a failure: the
// generated maze is still valid and fully connected.
func (r Report) Partial() bool {
	return r.WallsAdded < r.WallsRequested
}

// Generator runs the full wall-grid pipeline: spanning-tree carving
// followed by connectivity-preserving densification up to a minimum
// interior wall count. All randomness comes from the injected generator,
// so a fixed seed reproduces the exact same grid.
type Generator struct {
	size     int
	minWalls int
	rng      *rand.Rand
}

// NewGenerator creates a generator for a size×size maze with at least
// minWalls interior walls, drawing randomness from rng.
func NewGenerator(size, minWalls int, rng *rand.Rand) (*Generator, error) {
	if size < 1 {
		return nil, ErrInvalidDimension
	}
	if minWalls < 0 {
		return nil, ErrNegativeMinWalls
	}

	return &Generator{
		size:     size,
		minWalls: minWalls,
		rng:      rng,
	}, nil
}

// Generate builds the maze and returns the final wall grid together with a
// report of what the pipeline did. The returned grid is not mutated again;
// callers may read it freely.
func (gen *Generator) Generate() (*WallGrid, Report, error) {
	grid, err := NewWallGrid(gen.size)
	if err != nil {
		return nil, Report{}, err
	}

	Carve(grid, gen.rng)

	report := Report{CarvedInteriorWalls: grid.InteriorWallCount()}
	if report.CarvedInteriorWalls < gen.minWalls {
		report.WallsRequested = gen.minWalls - report.CarvedInteriorWalls
		report.WallsAdded = Densify(grid, report.WallsRequested, gen.rng)
	}
	report.InteriorWalls = grid.InteriorWallCount()

	return grid, report, nil
}
