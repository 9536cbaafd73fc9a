package position

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultEps is the angular tolerance in degrees used for the 0/90/180
// degree singular cases.
const DefaultEps = 1e-4

// Sighting pairs a landmark's world position with the bearing measured to
// it, in degrees counterclockwise from the robot's forward axis.
type Sighting struct {
	Landmark r2.Vec
	Bearing  float64
}

// Triple is three sightings in counterclockwise sweep order.
type Triple [3]Sighting

// Circle passes through two consecutive landmarks and the robot.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Pose is the triangulated robot state.
type Pose struct {
	Position     r2.Vec
	Heading      float64 // degrees in [0, 360)
	UnitVelocity r2.Vec
}

func (p Pose) String() string {
	return fmt.Sprintf("position=(%.6f, %.6f) heading=%.4f° velocity=(%.6f, %.6f)",
		p.Position.X, p.Position.Y, p.Heading, p.UnitVelocity.X, p.UnitVelocity.Y)
}
