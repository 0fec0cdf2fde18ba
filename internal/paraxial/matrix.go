package paraxial

// 2×2 ray transfer matrix mapping (y, u) column vectors.
type Mat2 struct {
	A, B, C, D Real
}

func Identity2() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Refraction is the thin-lens matrix for focal length f.
// Contract: f must be non-zero; lens construction enforces that.
func Refraction(f Real) Mat2 {
	return Mat2{1, 0, -1 / f, 1}
}

// Translation is the free-space matrix for an axial gap d.
func Translation(d Real) Mat2 {
	return Mat2{1, d, 0, 1}
}

// Mul returns M*N, i.e. the transform that applies N first, then M.
func (M Mat2) Mul(N Mat2) Mat2 {
	return Mat2{
		A: M.A*N.A + M.B*N.C,
		B: M.A*N.B + M.B*N.D,
		C: M.C*N.A + M.D*N.C,
		D: M.C*N.B + M.D*N.D,
	}
}

// Apply maps an input ray state (y, u) to the output state.
func (M Mat2) Apply(y, u Real) (Real, Real) {
	return M.A*y + M.B*u, M.C*y + M.D*u
}
