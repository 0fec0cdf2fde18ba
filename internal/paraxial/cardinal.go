package paraxial

import "math"

// CardinalPoints are the first-order constants of the whole system,
// derived from its ABCD matrix. For an afocal system (|C| under
// tolerance) EFL, BFL and Power degenerate: Power is ~0 and the focal
// lengths are +Inf, which is a meaningful, displayable answer rather
// than an error.
type CardinalPoints struct {
	Power          Real // -C
	EFL            Real // effective focal length, 1/Power (+Inf when afocal)
	FrontPrincipal Real // absolute z of the front principal plane H
	BackPrincipal  Real // absolute z of the back principal plane H'
	BFL            Real // back focal distance measured from the last lens
}

// CardinalPoints computes the system's cardinal points, or nil for an
// empty system.
func (s *OpticalSystem) CardinalPoints() *CardinalPoints {
	m := s.SystemMatrix()
	if m == nil {
		return nil
	}
	zFirst := s.lenses[0].AxialPosition
	zLast := s.lenses[len(s.lenses)-1].AxialPosition

	power := -m.C
	efl := math.Inf(1)
	dH, dHp := Real(0), Real(0)
	if math.Abs(m.C) >= powerEps {
		efl = 1 / power
		dH = (m.D - 1) / m.C
		dHp = (1 - m.A) / m.C
	}
	hp := zLast + dHp
	return &CardinalPoints{
		Power:          power,
		EFL:            efl,
		FrontPrincipal: zFirst + dH,
		BackPrincipal:  hp,
		BFL:            (hp + efl) - zLast,
	}
}
