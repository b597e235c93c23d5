// Package domain holds the persistent records of the maze world generator.
package domain

import (
	"time"

	"github.com/beka-birhanu/maze-world-gen/maze"
	"github.com/beka-birhanu/maze-world-gen/scene"
	"github.com/google/uuid"
)

// Scene is one generated maze world: the parameters it was generated from,
// the seed that reproduces it, and the projected wall layout.
type Scene struct {
	ID        uuid.UUID              `bson:"_id" json:"id"`
	GridSize  int                    `bson:"gridSize" json:"grid_size"`
	CellSize  float64                `bson:"cellSize" json:"cell_size"`
	MinWalls  int                    `bson:"minWalls" json:"min_walls"`
	Seed      int64                  `bson:"seed" json:"seed"`
	Report    maze.Report            `bson:"report" json:"report"`
	Walls     []scene.WallDescriptor `bson:"walls" json:"walls"`
	Summary   scene.Summary          `bson:"summary" json:"summary"`
	CreatedAt time.Time              `bson:"createdAt" json:"created_at"`
}
