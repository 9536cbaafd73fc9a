// Package position computes a robot pose from bearings to three known
// landmarks using the geometric circle intersection method, and serves that
// pose from the latest stored bearings.
package position

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"triangulator/internal/geometry"
)

// Triangulate returns the robot pose given three landmark positions and the
// bearings measured to them, index for index. Bearings are degrees
// counterclockwise from the robot's forward axis; eps is the angular
// tolerance in degrees for the singular 0/180 degree inscribed angles.
func Triangulate(landmarks []r2.Vec, bearings []float64, eps float64) (Pose, error) {
	sightings, err := validate(landmarks, bearings, eps)
	if err != nil {
		return Pose{}, err
	}

	t, err := OrderLandmarks(sightings)
	if err != nil {
		return Pose{}, err
	}

	a, b, err := BuildCircles(t, eps)
	if err != nil {
		return Pose{}, err
	}

	return Resolve(t, a, b)
}

func validate(landmarks []r2.Vec, bearings []float64, eps float64) ([3]Sighting, error) {
	var s [3]Sighting

	if len(landmarks) != 3 || len(bearings) != 3 {
		return s, fmt.Errorf("%w: need exactly 3 landmarks and 3 bearings, got %d and %d",
			ErrInvalidInput, len(landmarks), len(bearings))
	}
	if !geometry.IsFinite(eps) || eps <= 0 || eps >= 90 {
		return s, fmt.Errorf("%w: eps %v out of range (0, 90)", ErrInvalidInput, eps)
	}

	for i := range s {
		l := landmarks[i]
		if !geometry.IsFinite(l.X, l.Y, bearings[i]) {
			return s, fmt.Errorf("%w: landmark %d has non-finite input", ErrInvalidInput, i)
		}
		s[i] = Sighting{Landmark: l, Bearing: bearings[i]}
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if landmarks[i] == landmarks[j] {
				return s, fmt.Errorf("%w: landmarks %d and %d coincide", ErrInvalidInput, i, j)
			}
		}
	}

	return s, nil
}

// Bearings returns the bearings, in degrees within [0, 360), that a robot at
// position facing heading (degrees) would measure to each landmark.
func Bearings(position r2.Vec, heading float64, landmarks []r2.Vec) []float64 {
	out := make([]float64, len(landmarks))
	for i, l := range landmarks {
		trueBearing := geometry.Degrees(geometry.Direction(geometry.Sub(l, position)))
		out[i] = geometry.NormalizeDegrees(trueBearing - heading)
	}
	return out
}
