package position

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"triangulator/internal/storage"
)

// Landmark is a named landmark with a known world position.
type Landmark struct {
	ID       string
	Position r2.Vec
}

type BearingSource interface {
	Get(landmarkID string) (storage.BearingData, bool)
}

type PositionService struct {
	storage   BearingSource
	landmarks []Landmark
	eps       float64
	maxAge    time.Duration
	now       func() time.Time
}

// NewPositionService triangulates from the latest bearings to landmarks.
// maxAge of zero accepts bearings of any age.
func NewPositionService(s BearingSource, landmarks []Landmark, eps float64, maxAge time.Duration) *PositionService {
	return &PositionService{
		storage:   s,
		landmarks: landmarks,
		eps:       eps,
		maxAge:    maxAge,
		now:       time.Now,
	}
}

func (ps *PositionService) GetCurrentPose() (Pose, error) {
	if len(ps.landmarks) != 3 {
		return Pose{}, fmt.Errorf("%w: %d landmarks configured", ErrInvalidInput, len(ps.landmarks))
	}

	positions := make([]r2.Vec, 0, 3)
	bearings := make([]float64, 0, 3)
	now := ps.now()

	for _, l := range ps.landmarks {
		d, ok := ps.storage.Get(l.ID)
		if !ok {
			return Pose{}, fmt.Errorf("%w: no bearing for %s", ErrNotEnoughBearings, l.ID)
		}
		if ps.maxAge > 0 && now.Sub(d.UpdatedAt) > ps.maxAge {
			return Pose{}, fmt.Errorf("%w: %s updated %s ago", ErrStaleBearing, l.ID, now.Sub(d.UpdatedAt))
		}
		positions = append(positions, l.Position)
		bearings = append(bearings, d.Bearing)
	}

	return Triangulate(positions, bearings, ps.eps)
}
