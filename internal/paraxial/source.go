package paraxial

import (
	"math"

	"github.com/pkg/errors"
)

// Source describes what emits the rays of a fan: a point at finite
// distance, or a source at infinity arriving at a fixed angle. It is a
// closed two-case variant; each case carries only the fields it needs.
type Source interface {
	isSource()
}

// PointSource emits from a single point (z, y).
type PointSource struct {
	Z Real
	Y Real
}

// DistantSource is a source at infinity; all its rays share the slope
// tan(AngleDeg).
type DistantSource struct {
	AngleDeg Real
}

func (PointSource) isSource()   {}
func (DistantSource) isSource() {}

// RayFan builds n rays from src whose heights at the first lens plane are
// linearly spread over ±95% of that lens's aperture half-height, so the
// fan just fills the first element. A single-ray fan aims at the axis.
//
// Errors: empty system, n < 1, or a point source sitting on the first
// lens plane (its slopes are undefined there).
func (s *OpticalSystem) RayFan(src Source, n int) ([]*Ray, error) {
	if n < 1 {
		return nil, errors.Errorf("ray count must be at least 1; got %d", n)
	}
	if len(s.lenses) == 0 {
		return nil, errors.New("cannot build a ray fan for an empty system")
	}
	first := s.lenses[0]
	limit := fanFill * first.ApertureHalfHeight

	point, isPoint := src.(PointSource)
	var distantU Real
	switch v := src.(type) {
	case PointSource:
		if math.Abs(first.AxialPosition-v.Z) < posEps {
			return nil, errors.New("point source coincides with the first lens plane")
		}
	case DistantSource:
		distantU = math.Tan(v.AngleDeg * math.Pi / 180)
	default:
		return nil, errors.Errorf("unknown source type %T", src)
	}

	rays := make([]*Ray, 0, n)
	for i := 0; i < n; i++ {
		h := Real(0) // target height at the first lens plane
		if n > 1 {
			h = -limit + 2*limit*Real(i)/Real(n-1)
		}
		if isPoint {
			u := (h - point.Y) / (first.AxialPosition - point.Z)
			rays = append(rays, NewRay(point.Z, point.Y, u))
		} else {
			rays = append(rays, NewRay(
				first.AxialPosition-distantLead,
				h-distantU*distantLead,
				distantU,
			))
		}
	}
	return rays, nil
}
