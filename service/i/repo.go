package i

import (
	dmn "github.com/beka-birhanu/maze-world-gen/domain"
	"github.com/google/uuid"
)

// SceneRepo defines the interface for scene persistence operations.
type SceneRepo interface {
	// Save inserts or updates a scene in the repository.
	// If the scene already exists, it updates the record. Otherwise, it creates a new one.
	Save(scene *dmn.Scene) error

	// ByID retrieves a scene by its unique ID.
	// Returns an error if the scene is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Scene, error)

	// Latest retrieves up to limit scenes, newest first.
	Latest(limit int) ([]*dmn.Scene, error)
}
