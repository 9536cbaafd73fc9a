package position

import (
	"fmt"

	"triangulator/internal/geometry"
)

// landmarkOrders is searched front to back; the first match wins.
var landmarkOrders = [6][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// sweep returns the counterclockwise angles from the first bearing to the
// second and from the second to the third, each in [0, 360).
func sweep(a0, a1, a2 float64) (alpha, beta float64) {
	return geometry.NormalizeDegrees(a1 - a0), geometry.NormalizeDegrees(a2 - a1)
}

// OrderLandmarks reorders the sightings so that landmark 0 -> 1 -> 2 is swept
// counterclockwise with both gaps at most 180 degrees. Bearings in the
// result are reduced to [0, 360).
func OrderLandmarks(sightings [3]Sighting) (Triple, error) {
	for _, order := range landmarkOrders {
		alpha, beta := sweep(
			sightings[order[0]].Bearing,
			sightings[order[1]].Bearing,
			sightings[order[2]].Bearing,
		)
		if !(alpha >= 0 && alpha <= 180 && beta >= 0 && beta <= 180) {
			continue
		}

		var t Triple
		for i, idx := range order {
			t[i] = Sighting{
				Landmark: sightings[idx].Landmark,
				Bearing:  geometry.NormalizeDegrees(sightings[idx].Bearing),
			}
		}
		return t, nil
	}

	return Triple{}, fmt.Errorf("%w: bearings %.6f, %.6f, %.6f", ErrOrderingIndeterminate,
		sightings[0].Bearing, sightings[1].Bearing, sightings[2].Bearing)
}
