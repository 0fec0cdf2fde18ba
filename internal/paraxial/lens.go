package paraxial

import "github.com/pkg/errors"

// Lens is one ideal thin element. Positive focal length converges,
// negative diverges; the aperture half-height is the clear radius that
// vignettes rays. The ID is assigned by the owning system and stays
// stable for the lens's lifetime.
type Lens struct {
	ID                 int
	FocalLength        Real
	AxialPosition      Real
	ApertureHalfHeight Real
}

func newLens(id int, focalLength, position, aperture Real) (*Lens, error) {
	if focalLength == 0 {
		return nil, errors.New("focal length must be non-zero")
	}
	if aperture <= 0 {
		return nil, errors.Errorf("aperture half-height must be positive; got %.6g", aperture)
	}
	return &Lens{
		ID:                 id,
		FocalLength:        focalLength,
		AxialPosition:      position,
		ApertureHalfHeight: aperture,
	}, nil
}
