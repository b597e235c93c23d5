package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarve(t *testing.T) {
	t.Run("opens a spanning tree for any size", func(t *testing.T) {
		for _, size := range []int{1, 2, 3, 5, 8, 13} {
			g, err := NewWallGrid(size)
			assert.NoError(t, err)

			Carve(g, rand.New(rand.NewSource(42)))

			// A spanning tree over N² cells has N²-1 edges.
			assert.Len(t, g.OpenInteriorWalls(), size*size-1, "size %d", size)
			assert.True(t, FullyConnected(g), "size %d", size)
			assert.True(t, boundaryIntact(g), "size %d", size)
		}
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		first, err := NewWallGrid(9)
		assert.NoError(t, err)
		second, err := NewWallGrid(9)
		assert.NoError(t, err)

		Carve(first, rand.New(rand.NewSource(1234)))
		Carve(second, rand.New(rand.NewSource(1234)))

		assert.Equal(t, first.String(), second.String())
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		first, err := NewWallGrid(9)
		assert.NoError(t, err)
		second, err := NewWallGrid(9)
		assert.NoError(t, err)

		Carve(first, rand.New(rand.NewSource(1)))
		Carve(second, rand.New(rand.NewSource(2)))

		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("handles a large grid without recursing", func(t *testing.T) {
		g, err := NewWallGrid(100)
		assert.NoError(t, err)

		Carve(g, rand.New(rand.NewSource(99)))

		assert.Len(t, g.OpenInteriorWalls(), 100*100-1)
		assert.True(t, FullyConnected(g))
	})
}
