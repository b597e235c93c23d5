package service

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-world-gen/config"
	dmn "github.com/beka-birhanu/maze-world-gen/domain"
	"github.com/beka-birhanu/maze-world-gen/maze"
	"github.com/beka-birhanu/maze-world-gen/scene"
	"github.com/beka-birhanu/maze-world-gen/service/i"
	"github.com/google/uuid"
)

// maxGridSize caps requested mazes: densification costs O(walls·cells) per
// candidate wall, which stays in the tens of milliseconds up to this size.
const maxGridSize = 64

var (
	ErrMissingRepo       = errors.New("scene repository is required")
	ErrMissingLogger     = errors.New("logger is required")
	ErrDimensionTooLarge = errors.New("grid size is too large")
)

// SceneService generates maze scenes and persists them.
type SceneService struct {
	repo   i.SceneRepo
	logger *log.Logger
}

// Config holds dependencies for creating a new SceneService instance.
type Config struct {
	Repo   i.SceneRepo
	Logger *log.Logger
}

// NewSceneService creates a SceneService with the given configuration.
func NewSceneService(c *Config) (*SceneService, error) {
	if c.Repo == nil {
		return nil, ErrMissingRepo
	}
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	return &SceneService{
		repo:   c.Repo,
		logger: c.Logger,
	}, nil
}

// Create runs the full pipeline for one scene: parameter validation,
// seeded generation, projection, and persistence. Invalid parameters are
// rejected before any generation work starts. A partially satisfied
// minimum wall count is logged as a warning; the scene is still valid and
// fully connected.
func (s *SceneService) Create(gridSize int, cellSize float64, minWalls int, seed int64) (*dmn.Scene, error) {
	if gridSize > maxGridSize {
		return nil, ErrDimensionTooLarge
	}

	generator, err := maze.NewGenerator(gridSize, minWalls, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	projector, err := scene.NewProjector(cellSize)
	if err != nil {
		return nil, err
	}

	grid, report, err := generator.Generate()
	if err != nil {
		return nil, err
	}

	if report.Partial() {
		s.logger.Printf("%s[WARNING]%s only %d of %d additional walls could be placed without disconnecting the maze",
			config.LogWarnColor, config.LogColorReset, report.WallsAdded, report.WallsRequested)
	}

	walls := projector.Project(grid)
	record := &dmn.Scene{
		ID:        uuid.New(),
		GridSize:  gridSize,
		CellSize:  cellSize,
		MinWalls:  minWalls,
		Seed:      seed,
		Report:    report,
		Walls:     walls,
		Summary:   scene.Summarize(gridSize, walls),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(record); err != nil {
		return nil, err
	}

	s.logger.Printf("%s[INFO]%s generated scene %s: %dx%d maze, %d walls",
		config.LogInfoColor, config.LogColorReset, record.ID, gridSize, gridSize, record.Summary.Total)
	return record, nil
}

// ByID retrieves a previously generated scene.
func (s *SceneService) ByID(id uuid.UUID) (*dmn.Scene, error) {
	return s.repo.ByID(id)
}

// Latest retrieves up to limit scenes, newest first.
func (s *SceneService) Latest(limit int) ([]*dmn.Scene, error) {
	return s.repo.Latest(limit)
}
