package i

import (
	dmn "github.com/beka-birhanu/maze-world-gen/domain"
	"github.com/google/uuid"
)

// SceneManager defines the operations the API layer needs to generate and
// fetch maze scenes.
type SceneManager interface {
	// Create validates the parameters, generates a maze with the given
	// seed, projects it and persists the resulting scene.
	Create(gridSize int, cellSize float64, minWalls int, seed int64) (*dmn.Scene, error)

	// ByID retrieves a previously generated scene.
	ByID(id uuid.UUID) (*dmn.Scene, error)

	// Latest retrieves up to limit scenes, newest first.
	Latest(limit int) ([]*dmn.Scene, error)
}
