package paraxial

import "math"

// Image is where an on-axis object at a given z is imaged, and at what
// magnification. AtInfinity marks the collimated case (object at the
// front focal point); Z and Mag are then +Inf.
type Image struct {
	Z          Real
	Mag        Real
	Virtual    bool // image forms before the last lens (d_i < 0)
	AtInfinity bool
}

// Image locates the image of an on-axis object at objectZ, or nil for an
// empty system. Object height never enters here; it only matters to ray
// generation.
func (s *OpticalSystem) Image(objectZ Real) *Image {
	m := s.SystemMatrix()
	if m == nil {
		return nil
	}
	zFirst := s.lenses[0].AxialPosition
	zLast := s.lenses[len(s.lenses)-1].AxialPosition

	dO := zFirst - objectZ
	den := m.C*dO + m.D
	if math.Abs(den) < powerEps {
		return &Image{Z: math.Inf(1), Mag: math.Inf(1), AtInfinity: true}
	}
	dI := -(m.A*dO + m.B) / den
	return &Image{
		Z: zLast + dI,
		// algebraically 1/(C·dO+D); kept in matrix form for numerical
		// consistency with the composition above
		Mag:     m.A + dI*m.C,
		Virtual: dI < 0,
	}
}
