package position

import "errors"

// Triangulation failures
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrOrderingIndeterminate = errors.New("no landmark ordering satisfies the counterclockwise sweep")
	ErrCollinearDegeneracy   = errors.New("robot is collinear with all landmarks")
	ErrConcentricCircles     = errors.New("construction circles coincide")
)

// Service failures
var (
	ErrNotEnoughBearings = errors.New("not enough bearings for triangulation")
	ErrStaleBearing      = errors.New("bearing is too old")
)
