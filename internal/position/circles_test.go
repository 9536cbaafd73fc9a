package position

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func referenceTriple(t *testing.T) Triple {
	t.Helper()

	var s [3]Sighting
	for i := range s {
		s[i] = Sighting{Landmark: referenceLandmarks[i], Bearing: referenceBearings[i]}
	}
	triple, err := OrderLandmarks(s)
	require.NoError(t, err)
	return triple
}

func TestOrderLandmarks(t *testing.T) {
	triple := referenceTriple(t)

	assert.Equal(t, r2.Vec{X: 1, Y: -1}, triple[0].Landmark)
	assert.Equal(t, r2.Vec{X: 3, Y: 1}, triple[1].Landmark)
	assert.Equal(t, r2.Vec{X: -1, Y: 2}, triple[2].Landmark)
	assert.InDelta(t, 285, triple[0].Bearing, 1e-9)
	assert.InDelta(t, 348.4349488, triple[1].Bearing, 1e-9)
	assert.InDelta(t, 86.5650512, triple[2].Bearing, 1e-9)
}

func TestOrderLandmarksFirstMatchWins(t *testing.T) {
	s := [3]Sighting{
		{Landmark: r2.Vec{X: 0}, Bearing: 0},
		{Landmark: r2.Vec{X: 1}, Bearing: 120},
		{Landmark: r2.Vec{X: 2}, Bearing: 240},
	}
	triple, err := OrderLandmarks(s)
	require.NoError(t, err)
	assert.Equal(t, Triple(s), triple)
}

func TestOrderLandmarksIndeterminate(t *testing.T) {
	s := [3]Sighting{{Bearing: 0}, {Bearing: math.NaN()}, {Bearing: 10}}
	_, err := OrderLandmarks(s)
	assert.ErrorIs(t, err, ErrOrderingIndeterminate)
}

func TestBuildCircles(t *testing.T) {
	a, b, err := BuildCircles(referenceTriple(t), DefaultEps)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, a.Center.X, 1e-6)
	assert.InDelta(t, 0.5, a.Center.Y, 1e-6)
	assert.InDelta(t, math.Sqrt(2.5), a.Radius, 1e-6)

	assert.InDelta(t, 15.0/14, b.Center.X, 1e-6)
	assert.InDelta(t, 25.0/14, b.Center.Y, 1e-6)
	assert.InDelta(t, math.Sqrt(850)/14, b.Radius, 1e-6)
}

func TestInscribedCircle(t *testing.T) {
	p, q := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 0}

	c, err := inscribedCircle(p, q, 90, DefaultEps)
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 1, Y: 0}, c.Center)
	assert.InDelta(t, 1, c.Radius, 1e-12)

	// acute angle puts the center left of p->q
	c, err = inscribedCircle(p, q, 45, DefaultEps)
	require.NoError(t, err)
	assert.InDelta(t, 1, c.Center.X, 1e-12)
	assert.InDelta(t, 1, c.Center.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, c.Radius, 1e-12)

	// zero is nudged to eps and stays finite
	c, err = inscribedCircle(p, q, 0, DefaultEps)
	require.NoError(t, err)
	assert.False(t, math.IsInf(c.Radius, 0))
	assert.Greater(t, c.Center.Y, 0.0)

	_, err = inscribedCircle(p, p, 45, DefaultEps)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCosineRuleAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, cosineRuleAngle(3, 4, 5), 1e-12)
	assert.InDelta(t, math.Pi/3, cosineRuleAngle(1, 1, 1), 1e-12)
	// rounding past the valid range is clamped
	assert.InDelta(t, 0, cosineRuleAngle(1, 1, 0), 1e-7)
}
