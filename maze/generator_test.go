package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenerator(t *testing.T) {
	t.Run("rejects invalid size", func(t *testing.T) {
		_, err := NewGenerator(0, 0, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("rejects negative minimum wall count", func(t *testing.T) {
		_, err := NewGenerator(5, -1, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrNegativeMinWalls)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("single cell maze", func(t *testing.T) {
		gen, err := NewGenerator(1, 0, rand.New(rand.NewSource(1)))
		assert.NoError(t, err)

		grid, report, err := gen.Generate()
		assert.NoError(t, err)
		assert.Zero(t, report.InteriorWalls)
		assert.True(t, FullyConnected(grid))
		assert.True(t, boundaryIntact(grid))
	})

	t.Run("carve only when the minimum is already met", func(t *testing.T) {
		gen, err := NewGenerator(5, 0, rand.New(rand.NewSource(77)))
		assert.NoError(t, err)

		grid, report, err := gen.Generate()
		assert.NoError(t, err)

		// 2·5·4 interior positions minus the 24 spanning-tree passages.
		assert.Equal(t, 16, report.CarvedInteriorWalls)
		assert.Equal(t, 16, report.InteriorWalls)
		assert.Zero(t, report.WallsRequested)
		assert.Zero(t, report.WallsAdded)
		assert.False(t, report.Partial())
		assert.True(t, FullyConnected(grid))
	})

	t.Run("unreachable minimum is reported, not fatal", func(t *testing.T) {
		gen, err := NewGenerator(5, 30, rand.New(rand.NewSource(77)))
		assert.NoError(t, err)

		grid, report, err := gen.Generate()
		assert.NoError(t, err)

		assert.Equal(t, 14, report.WallsRequested)
		assert.LessOrEqual(t, report.InteriorWalls, 30)
		assert.GreaterOrEqual(t, report.InteriorWalls, report.CarvedInteriorWalls)
		assert.True(t, report.Partial())
		assert.True(t, FullyConnected(grid))
		assert.True(t, boundaryIntact(grid))
	})

	t.Run("fixed seed reproduces the exact grid", func(t *testing.T) {
		run := func() string {
			gen, err := NewGenerator(8, 20, rand.New(rand.NewSource(4321)))
			assert.NoError(t, err)
			grid, _, err := gen.Generate()
			assert.NoError(t, err)
			return grid.String()
		}

		assert.Equal(t, run(), run())
	})
}
