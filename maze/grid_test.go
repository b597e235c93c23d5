package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// boundaryIntact reports whether every outer boundary wall is standing.
func boundaryIntact(g *WallGrid) bool {
	n := g.Size()
	for col := 0; col < n; col++ {
		if !g.HasWall(Horizontal, 0, col) || !g.HasWall(Horizontal, n, col) {
			return false
		}
	}
	for row := 0; row < n; row++ {
		if !g.HasWall(Vertical, row, 0) || !g.HasWall(Vertical, row, n) {
			return false
		}
	}
	return true
}

func TestWallGrid(t *testing.T) {
	t.Run("rejects invalid size", func(t *testing.T) {
		_, err := NewWallGrid(0)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = NewWallGrid(-3)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("starts fully walled", func(t *testing.T) {
		g, err := NewWallGrid(3)
		assert.NoError(t, err)

		// 2·N·(N-1) interior positions, all occupied
		assert.Equal(t, 12, g.InteriorWallCount())
		assert.Empty(t, g.OpenInteriorWalls())
		assert.True(t, boundaryIntact(g))
	})

	t.Run("set and read walls", func(t *testing.T) {
		g, err := NewWallGrid(3)
		assert.NoError(t, err)

		g.SetWall(Horizontal, 1, 0, false)
		g.SetWall(Vertical, 2, 1, false)

		assert.False(t, g.HasWall(Horizontal, 1, 0))
		assert.False(t, g.HasWall(Vertical, 2, 1))
		assert.Equal(t, 10, g.InteriorWallCount())
		assert.ElementsMatch(t, []WallPosition{
			{Orientation: Horizontal, Row: 1, Col: 0},
			{Orientation: Vertical, Row: 2, Col: 1},
		}, g.OpenInteriorWalls())
	})

	t.Run("out of range access panics", func(t *testing.T) {
		g, err := NewWallGrid(2)
		assert.NoError(t, err)

		assert.Panics(t, func() { g.HasWall(Horizontal, 3, 0) })
		assert.Panics(t, func() { g.SetWall(Vertical, 0, 5, false) })
	})

	t.Run("in bound", func(t *testing.T) {
		g, err := NewWallGrid(2)
		assert.NoError(t, err)

		assert.True(t, g.InBound(0, 0))
		assert.True(t, g.InBound(1, 1))
		assert.False(t, g.InBound(-1, 0))
		assert.False(t, g.InBound(2, 0))
		assert.False(t, g.InBound(0, 2))
	})

	t.Run("renders closed grid", func(t *testing.T) {
		g, err := NewWallGrid(2)
		assert.NoError(t, err)

		expected := "" +
			"+---+---+\n" +
			"|   |   |\n" +
			"+---+---+\n" +
			"|   |   |\n" +
			"+---+---+\n"
		assert.Equal(t, expected, g.String())
	})
}
