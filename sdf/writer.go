// Package sdf serializes wall descriptors into a Gazebo SDF world file:
// a fixed world template with a sun and a ground plane, holding one static
// maze model with one box link per wall.
package sdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/maze-world-gen/scene"
)

const worldHeader = `<?xml version="1.0" ?>
<sdf version="1.6">
  <world name="maze_world">

    <include>
      <uri>model://sun</uri>
    </include>

    <include>
      <uri>model://ground_plane</uri>
    </include>

    <model name="maze">
      <static>true</static>
      <pose>0 0 0 0 0 0</pose>
`

const worldFooter = `    </model>
  </world>
</sdf>
`

const wallLink = `
      <link name="wall_%d">
        <pose>%g %g %g 0 0 %g</pose>
        <collision name="collision">
          <geometry>
            <box>
              <size>%g %g %g</size>
            </box>
          </geometry>
        </collision>
        <visual name="visual">
          <geometry>
            <box>
              <size>%g %g %g</size>
            </box>
          </geometry>
          <material>
            <ambient>0.7 0.7 0.7 1</ambient>
            <diffuse>0.7 0.7 0.7 1</diffuse>
            <specular>0.1 0.1 0.1 1</specular>
          </material>
        </visual>
      </link>
`

// Write emits the SDF world document for the given walls. Links are named
// wall_0, wall_1, ... in input order, so an identical descriptor sequence
// always produces identical bytes.
func Write(w io.Writer, walls []scene.WallDescriptor) error {
	var b strings.Builder
	b.WriteString(worldHeader)
	for i, wall := range walls {
		fmt.Fprintf(&b, wallLink,
			i,
			wall.X, wall.Y, wall.Z, wall.Yaw,
			wall.Length, wall.Width, wall.Height,
			wall.Length, wall.Width, wall.Height,
		)
	}
	b.WriteString(worldFooter)

	_, err := io.WriteString(w, b.String())
	return err
}
