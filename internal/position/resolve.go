package position

import (
	"fmt"
	"math"

	"triangulator/internal/geometry"
)

// Resolve finds the second intersection of circles a and b, the first being
// landmark 1, and derives the heading from landmark 0's bearing.
func Resolve(t Triple, a, b Circle) (Pose, error) {
	pt0, pt1 := t[0].Landmark, t[1].Landmark

	// triangle (b.Center, pt1, a.Center), angle at b.Center
	gamma := cosineRuleAngle(
		geometry.Distance(b.Center, a.Center),
		geometry.Distance(b.Center, pt1),
		geometry.Distance(pt1, a.Center),
	)
	chord := 2 * b.Radius * math.Sin(gamma)

	normal, err := geometry.OrientedNormal(
		geometry.Sub(a.Center, b.Center),
		geometry.Sub(a.Center, pt1),
	)
	if err != nil {
		return Pose{}, fmt.Errorf("%w: %w", ErrConcentricCircles, err)
	}
	robot := geometry.Add(pt1, geometry.Scale(chord, normal))
	if !geometry.IsFinite(robot.X, robot.Y) {
		return Pose{}, fmt.Errorf("%w: non-finite position", ErrCollinearDegeneracy)
	}

	trueBearing := geometry.Degrees(geometry.Direction(geometry.Sub(pt0, robot)))
	heading := geometry.NormalizeDegrees(trueBearing - t[0].Bearing)

	return Pose{
		Position:     robot,
		Heading:      heading,
		UnitVelocity: geometry.HeadingToUnitVelocity(heading),
	}, nil
}

// cosineRuleAngle returns the angle opposite side c in a triangle with
// sides a, b, c.
func cosineRuleAngle(a, b, c float64) float64 {
	cos := (a*a + b*b - c*c) / (2 * a * b)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
