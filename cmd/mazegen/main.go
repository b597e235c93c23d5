// Command mazegen generates a connected maze and writes it as a Gazebo SDF
// world file, the way the API server does but from the command line.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/maze-world-gen/maze"
	"github.com/beka-birhanu/maze-world-gen/scene"
	"github.com/beka-birhanu/maze-world-gen/sdf"
	log "github.com/sirupsen/logrus"
)

func main() {
	size := flag.Int("size", 5, "maze grid size (NxN)")
	cellSize := flag.Float64("cell-size", 1.0, "cell size in meters")
	minWalls := flag.Int("min-walls", 5, "minimum interior wall count")
	output := flag.String("output", "maze.sdf", "output SDF file name")
	seed := flag.Int64("seed", 0, "random seed for reproducible mazes (0 = time-based)")
	printMaze := flag.Bool("print", false, "print the generated maze to stdout")
	flag.Parse()

	resolvedSeed := *seed
	if resolvedSeed == 0 {
		resolvedSeed = time.Now().UnixNano()
	} else {
		log.Infof("random seed: %d", resolvedSeed)
	}

	generator, err := maze.NewGenerator(*size, *minWalls, rand.New(rand.NewSource(resolvedSeed)))
	if err != nil {
		log.Fatalf("invalid maze parameters: %v", err)
	}

	projector, err := scene.NewProjector(*cellSize)
	if err != nil {
		log.Fatalf("invalid cell size: %v", err)
	}

	log.Infof("generating %dx%d maze (cell %gm, at least %d interior walls)", *size, *size, *cellSize, *minWalls)
	grid, report, err := generator.Generate()
	if err != nil {
		log.Fatalf("generating maze: %v", err)
	}

	log.Infof("interior walls after carving: %d", report.CarvedInteriorWalls)
	if report.WallsRequested > 0 {
		log.Infof("added %d of %d requested walls", report.WallsAdded, report.WallsRequested)
	}
	if report.Partial() {
		log.Warnf("only %d of %d additional walls could be placed without disconnecting the maze", report.WallsAdded, report.WallsRequested)
	}

	if *printMaze {
		fmt.Println(grid)
	}

	walls := projector.Project(grid)

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating %s: %v", *output, err)
	}
	if err := sdf.Write(file, walls); err != nil {
		_ = file.Close()
		log.Fatalf("writing %s: %v", *output, err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("closing %s: %v", *output, err)
	}

	summary := scene.Summarize(*size, walls)
	side := float64(*size) * *cellSize
	log.Infof("wrote %s: %d walls (%d boundary, %d interior)", *output, summary.Total, summary.Boundary, summary.Interior)
	log.Infof("maze footprint %gm x %gm, all cells connected", side, side)
	log.Infof("run it with: gazebo %s", *output)
}
