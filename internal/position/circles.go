package position

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"triangulator/internal/geometry"
)

const centerTolerance = 1e-9

// BuildCircles constructs circle A through landmarks 0, 1 and the robot and
// circle B through landmarks 1, 2 and the robot, sized from the inscribed
// angles alpha and beta. eps is in degrees.
func BuildCircles(t Triple, eps float64) (a, b Circle, err error) {
	alpha, beta := sweep(t[0].Bearing, t[1].Bearing, t[2].Bearing)

	if nearStraight(alpha, eps) && nearStraight(beta, eps) {
		return Circle{}, Circle{}, fmt.Errorf("%w: alpha=%.6f beta=%.6f", ErrCollinearDegeneracy, alpha, beta)
	}

	a, err = inscribedCircle(t[0].Landmark, t[1].Landmark, alpha, eps)
	if err != nil {
		return Circle{}, Circle{}, err
	}
	b, err = inscribedCircle(t[1].Landmark, t[2].Landmark, beta, eps)
	if err != nil {
		return Circle{}, Circle{}, err
	}

	if scalar.EqualWithinAbsOrRel(a.Center.X, b.Center.X, centerTolerance, centerTolerance) &&
		scalar.EqualWithinAbsOrRel(a.Center.Y, b.Center.Y, centerTolerance, centerTolerance) {
		return Circle{}, Circle{}, fmt.Errorf("%w: center (%.6f, %.6f)", ErrConcentricCircles, a.Center.X, a.Center.Y)
	}

	return a, b, nil
}

// nearStraight reports whether an inscribed angle is within eps of 0 or 180.
func nearStraight(angle, eps float64) bool {
	return angle <= eps || angle >= 180-eps
}

// inscribedCircle returns the circle through p and q on which the chord pq
// subtends angleDeg. The center lies to the left of p->q for angles under 90.
func inscribedCircle(p, q r2.Vec, angleDeg, eps float64) (Circle, error) {
	// robot on the line through p and q: nudge off the singularity
	angleDeg = math.Max(eps, math.Min(180-eps, angleDeg))
	angle := geometry.Radians(angleDeg)

	u, err := geometry.Unit(geometry.Sub(q, p))
	if err != nil {
		return Circle{}, fmt.Errorf("%w: coincident landmarks: %w", ErrInvalidInput, err)
	}
	d := geometry.Distance(p, q)

	var offset float64
	if angleDeg != 90 {
		offset = d / (2 * math.Tan(angle))
	}

	left := r2.Vec{X: -u.Y, Y: u.X}
	return Circle{
		Center: geometry.Add(geometry.Midpoint(p, q), geometry.Scale(offset, left)),
		Radius: d / (2 * math.Sin(angle)),
	}, nil
}
