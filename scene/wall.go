/*
Package scene projects the abstract wall grid of a maze into 3D box
primitives for a physics simulator.

The maze is centered on the world origin. Each standing wall becomes one
WallDescriptor: a static box with a center position, a footprint aligned to
the world axes and a fixed height. Orientation is expressed purely through
the footprint dimensions, so yaw is always zero.
*/
package scene

// WallDescriptor is the 3D representation of a single maze wall. It is
// produced once by the projector and never mutated afterward.
type WallDescriptor struct {
	X float64 `bson:"x" json:"x"` // center, meters
	Y float64 `bson:"y" json:"y"`
	Z float64 `bson:"z" json:"z"`

	Length float64 `bson:"length" json:"length"` // footprint extent along the x axis
	Width  float64 `bson:"width" json:"width"`   // footprint extent along the y axis
	Height float64 `bson:"height" json:"height"`

	Yaw float64 `bson:"yaw" json:"yaw"` // always zero
}

// Summary counts the walls of a projected maze.
type Summary struct {
	Total    int `bson:"total" json:"total"`
	Boundary int `bson:"boundary" json:"boundary"`
	Interior int `bson:"interior" json:"interior"`
}

// Summarize counts the walls of a scene projected from a maze of the given
// grid size. The fixed outer boundary always contributes 4·size walls.
func Summarize(gridSize int, walls []WallDescriptor) Summary {
	boundary := 4 * gridSize
	return Summary{
		Total:    len(walls),
		Boundary: boundary,
		Interior: len(walls) - boundary,
	}
}
