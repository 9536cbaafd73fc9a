// Package geometry holds the planar vector algebra used by the triangulation
// code. Points and displacement vectors share the r2.Vec type.
package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerateVector is returned when a zero-length vector has no direction.
var ErrDegenerateVector = errors.New("degenerate vector: zero length")

// Length returns the Euclidean length of v
func Length(v r2.Vec) float64 { return r2.Norm(v) }

// Sub returns a - b
func Sub(a, b r2.Vec) r2.Vec { return r2.Sub(a, b) }

// Add returns a + b
func Add(a, b r2.Vec) r2.Vec { return r2.Add(a, b) }

// Scale returns s*v
func Scale(s float64, v r2.Vec) r2.Vec { return r2.Scale(s, v) }

// Distance returns the length of the segment between a and b.
func Distance(a, b r2.Vec) float64 { return r2.Norm(r2.Sub(b, a)) }

// Midpoint returns the point halfway from a to b.
func Midpoint(a, b r2.Vec) r2.Vec {
	return r2.Add(a, r2.Scale(0.5, r2.Sub(b, a)))
}

// Unit returns v scaled to length one.
func Unit(v r2.Vec) (r2.Vec, error) {
	l := r2.Norm(v)
	if l == 0 {
		return r2.Vec{}, ErrDegenerateVector
	}
	return r2.Scale(1/l, v), nil
}

// Dot returns the dot product of a and b
func Dot(a, b r2.Vec) float64 { return r2.Dot(a, b) }

// Direction returns the angle of v from the +X axis in radians, in (-pi, pi].
func Direction(v r2.Vec) float64 { return math.Atan2(v.Y, v.X) }

// OrientedNormal returns the unit vector perpendicular to v that points into
// the half-plane of facing. The candidate is v rotated by -90 degrees; it is
// flipped only when its dot product with facing is negative.
func OrientedNormal(v, facing r2.Vec) (r2.Vec, error) {
	n, err := Unit(r2.Vec{X: v.Y, Y: -v.X})
	if err != nil {
		return r2.Vec{}, err
	}
	if r2.Dot(n, facing) < 0 {
		return r2.Scale(-1, n), nil
	}
	return n, nil
}

// HeadingToUnitVelocity converts a heading in degrees to (cos h, sin h).
func HeadingToUnitVelocity(headingDeg float64) r2.Vec {
	h := Radians(headingDeg)
	return r2.Vec{X: math.Cos(h), Y: math.Sin(h)}
}
