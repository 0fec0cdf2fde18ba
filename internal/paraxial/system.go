package paraxial

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// OpticalSystem owns an ordered sequence of thin lenses and answers
// first-order queries about them. The lens slice is kept sorted by
// ascending axial position after every mutation; between lenses at the
// same position, insertion order decides who meets a ray first.
//
// Nothing is cached: every query walks the current lens list, so edits
// never leave stale derived state behind.
type OpticalSystem struct {
	lenses []*Lens
	nextID int
}

func NewSystem() *OpticalSystem {
	return &OpticalSystem{}
}

// AddLens appends a lens and re-sorts. Degenerate parameters (zero focal
// length, non-positive aperture) are rejected here so the trace and matrix
// paths never have to guard against them.
func (s *OpticalSystem) AddLens(focalLength, position, aperture Real) (*Lens, error) {
	l, err := newLens(s.nextID, focalLength, position, aperture)
	if err != nil {
		return nil, err
	}
	s.nextID++
	s.lenses = append(s.lenses, l)
	s.Resort()
	return l, nil
}

// AddLensDefault adds a lens with the default clear aperture.
func (s *OpticalSystem) AddLensDefault(focalLength, position Real) (*Lens, error) {
	return s.AddLens(focalLength, position, DefaultApertureHalfHeight)
}

// RemoveLens deletes the lens with the given id and reports whether it
// existed. Other lenses keep their identities.
func (s *OpticalSystem) RemoveLens(id int) bool {
	for i, l := range s.lenses {
		if l.ID == id {
			s.lenses = append(s.lenses[:i], s.lenses[i+1:]...)
			return true
		}
	}
	return false
}

// Lens returns the lens with the given id, or nil.
func (s *OpticalSystem) Lens(id int) *Lens {
	for _, l := range s.lenses {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Lenses returns the lenses in trace order. The slice is a copy; the
// lens pointers are the live elements.
func (s *OpticalSystem) Lenses() []*Lens {
	out := make([]*Lens, len(s.lenses))
	copy(out, s.lenses)
	return out
}

func (s *OpticalSystem) Len() int { return len(s.lenses) }

// SetFocalLength edits a lens in place, keeping the non-zero invariant.
func (s *OpticalSystem) SetFocalLength(id int, focalLength Real) error {
	if focalLength == 0 {
		return errors.New("focal length must be non-zero")
	}
	l := s.Lens(id)
	if l == nil {
		return errors.Errorf("no lens with id %d", id)
	}
	l.FocalLength = focalLength
	return nil
}

// SetPosition moves a lens along the axis and restores ordering.
func (s *OpticalSystem) SetPosition(id int, position Real) error {
	l := s.Lens(id)
	if l == nil {
		return errors.Errorf("no lens with id %d", id)
	}
	l.AxialPosition = position
	s.Resort()
	return nil
}

// Resort restores ascending-position order. Callers that mutate
// AxialPosition directly on a Lens must call this afterwards; the
// Set* methods do it for them. Stable, so coincident lenses keep
// their insertion order.
func (s *OpticalSystem) Resort() {
	sort.SliceStable(s.lenses, func(i, j int) bool {
		return s.lenses[i].AxialPosition < s.lenses[j].AxialPosition
	})
}

// TraceRay pushes the ray through every lens ahead of it, in order.
// The ray is vignetted (stopped, path ending at the blocking plane) the
// moment its height exceeds a lens's clear aperture. A surviving ray gets
// a fixed cosmetic extension past the last lens so callers always have a
// finite final segment to draw.
func (s *OpticalSystem) TraceRay(r *Ray) {
	s.trace(r)
}

// trace also reports the blocking lens, for trace records.
func (s *OpticalSystem) trace(r *Ray) *Lens {
	if r == nil || !r.Active {
		return nil
	}
	for _, l := range s.lenses {
		// A lens within posEps of the ray's plane is still reachable;
		// anything truly behind the ray is skipped.
		if l.AxialPosition < r.Z-posEps {
			continue
		}
		r.Propagate(l.AxialPosition)
		if math.Abs(r.Y) > l.ApertureHalfHeight {
			r.Stop()
			return l
		}
		r.Refract(l.FocalLength)
	}
	if r.Active {
		r.Propagate(r.Z + traceTail)
	}
	return nil
}

// SystemMatrix composes the ABCD matrix from the first lens plane to the
// last: refraction at each lens, translation across each gap, no leading
// or trailing translation. Nil when the system is empty.
func (s *OpticalSystem) SystemMatrix() *Mat2 {
	if len(s.lenses) == 0 {
		return nil
	}
	m := Identity2()
	for i, l := range s.lenses {
		if i > 0 {
			d := l.AxialPosition - s.lenses[i-1].AxialPosition
			m = Translation(d).Mul(m)
		}
		m = Refraction(l.FocalLength).Mul(m)
	}
	return &m
}
