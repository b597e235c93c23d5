package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// openAllInterior clears every interior wall, leaving a grid whose passage
// graph is full of cycles.
func openAllInterior(g *WallGrid) {
	n := g.Size()
	for row := 1; row < n; row++ {
		for col := 0; col < n; col++ {
			g.SetWall(Horizontal, row, col, false)
		}
	}
	for row := 0; row < n; row++ {
		for col := 1; col < n; col++ {
			g.SetWall(Vertical, row, col, false)
		}
	}
}

func TestDensify(t *testing.T) {
	t.Run("adds nothing when nothing is wanted", func(t *testing.T) {
		g, err := NewWallGrid(4)
		assert.NoError(t, err)

		Carve(g, rand.New(rand.NewSource(3)))
		before := g.String()

		assert.Zero(t, Densify(g, 0, rand.New(rand.NewSource(3))))
		assert.Zero(t, Densify(g, -2, rand.New(rand.NewSource(3))))
		assert.Equal(t, before, g.String())
	})

	t.Run("closes cycle passages until the grid is a tree", func(t *testing.T) {
		g, err := NewWallGrid(4)
		assert.NoError(t, err)

		openAllInterior(g)
		// 2·N·(N-1) passages, of which N²-1 must stay open.
		added := Densify(g, 100, rand.New(rand.NewSource(5)))

		assert.Equal(t, 24-15, added)
		assert.Len(t, g.OpenInteriorWalls(), 15)
		assert.True(t, FullyConnected(g))
		assert.True(t, boundaryIntact(g))
	})

	t.Run("stops at the requested count", func(t *testing.T) {
		g, err := NewWallGrid(4)
		assert.NoError(t, err)

		openAllInterior(g)
		before := g.InteriorWallCount()

		added := Densify(g, 3, rand.New(rand.NewSource(5)))

		assert.Equal(t, 3, added)
		assert.Equal(t, before+3, g.InteriorWallCount())
		assert.True(t, FullyConnected(g))
	})

	t.Run("never breaks a freshly carved tree", func(t *testing.T) {
		// After carving, every open passage is a bridge, so no wall can
		// come back without cutting the grid in two.
		g, err := NewWallGrid(5)
		assert.NoError(t, err)

		Carve(g, rand.New(rand.NewSource(21)))
		added := Densify(g, 14, rand.New(rand.NewSource(21)))

		assert.Zero(t, added)
		assert.True(t, FullyConnected(g))
		assert.Len(t, g.OpenInteriorWalls(), 24)
	})

	t.Run("interior wall count never decreases", func(t *testing.T) {
		g, err := NewWallGrid(6)
		assert.NoError(t, err)

		openAllInterior(g)
		before := g.InteriorWallCount()
		added := Densify(g, 10, rand.New(rand.NewSource(8)))

		assert.GreaterOrEqual(t, added, 0)
		assert.Equal(t, before+added, g.InteriorWallCount())
	})
}
