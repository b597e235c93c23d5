// Package sceneapi provides structures and utilities for generating and fetching maze scenes over HTTP.
package sceneapi

// CreateSceneRequest represents a request to generate a new maze scene.
type CreateSceneRequest struct {
	GridSize int     `json:"grid_size" binding:"required"`
	CellSize float64 `json:"cell_size" binding:"required"`
	MinWalls int     `json:"min_walls"`
	Seed     *int64  `json:"seed"`
}
