package paraxial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, s *OpticalSystem, f, z, a Real) *Lens {
	t.Helper()
	l, err := s.AddLens(f, z, a)
	require.NoError(t, err)
	return l
}

func positions(s *OpticalSystem) []Real {
	out := make([]Real, 0, s.Len())
	for _, l := range s.Lenses() {
		out = append(out, l.AxialPosition)
	}
	return out
}

func TestAddLensRejectsDegenerate(t *testing.T) {
	s := NewSystem()
	_, err := s.AddLens(0, 10, 25)
	assert.Error(t, err, "zero focal length must be rejected")
	_, err = s.AddLens(100, 10, 0)
	assert.Error(t, err, "non-positive aperture must be rejected")
	assert.Equal(t, 0, s.Len())
}

func TestLensOrderingAfterMutations(t *testing.T) {
	s := NewSystem()
	mustAdd(t, s, 100, 80, 25)
	mustAdd(t, s, 50, 20, 25)
	l3 := mustAdd(t, s, -75, 50, 25)
	assert.Equal(t, []Real{20, 50, 80}, positions(s))

	require.NoError(t, s.SetPosition(l3.ID, 5))
	assert.Equal(t, []Real{5, 20, 80}, positions(s))

	require.True(t, s.RemoveLens(l3.ID))
	assert.Equal(t, []Real{20, 80}, positions(s))
	assert.False(t, s.RemoveLens(l3.ID), "second removal must report absence")
}

func TestDirectEditThenResort(t *testing.T) {
	s := NewSystem()
	l := mustAdd(t, s, 100, 90, 25)
	mustAdd(t, s, 50, 20, 25)

	// callers editing fields directly owe the system a Resort
	l.AxialPosition = 5
	s.Resort()
	assert.Equal(t, []Real{5, 20}, positions(s))
}

func TestCoincidentLensesKeepInsertionOrder(t *testing.T) {
	s := NewSystem()
	a := mustAdd(t, s, 100, 30, 25)
	b := mustAdd(t, s, -50, 30, 25)
	mustAdd(t, s, 200, 10, 25)

	got := s.Lenses()
	assert.Equal(t, a.ID, got[1].ID, "earlier-added lens stays first among ties")
	assert.Equal(t, b.ID, got[2].ID)
}

func TestSetFocalLengthKeepsInvariant(t *testing.T) {
	s := NewSystem()
	l := mustAdd(t, s, 100, 0, 25)
	assert.Error(t, s.SetFocalLength(l.ID, 0))
	assert.EqualValues(t, 100, l.FocalLength)
	require.NoError(t, s.SetFocalLength(l.ID, -60))
	assert.EqualValues(t, -60, l.FocalLength)
	assert.Error(t, s.SetFocalLength(9999, 50), "unknown id")
}

func TestTraceRaySkipsLensesBehind(t *testing.T) {
	s := NewSystem()
	mustAdd(t, s, 100, -40, 25)
	mustAdd(t, s, 100, 60, 25)

	r := NewRay(0, 0, 0.1)
	s.TraceRay(r)
	require.True(t, r.Active)
	// only the lens at 60 participates: one propagation there, one tail
	require.Len(t, r.Path, 3)
	assert.EqualValues(t, 60, r.Path[1].Z)
	assert.EqualValues(t, 60+traceTail, r.Path[2].Z)
}

func TestTraceRayReachesLensAtOwnPlane(t *testing.T) {
	s := NewSystem()
	mustAdd(t, s, 100, 0, 25)

	// ray begins exactly on the lens plane: still refracted
	r := NewRay(0, 10, 0)
	s.TraceRay(r)
	require.True(t, r.Active)
	assert.InDelta(t, -10.0/100, r.U, eps)
}

func TestTraceRayVignetting(t *testing.T) {
	s := NewSystem()
	blocker := mustAdd(t, s, 100, 50, 5)
	mustAdd(t, s, 100, 120, 50)

	r := NewRay(0, 0, 0.2) // height 10 at z=50, over the 5-unit aperture
	s.TraceRay(r)
	assert.False(t, r.Active)
	last := r.Path[len(r.Path)-1]
	assert.EqualValues(t, blocker.AxialPosition, last.Z, "path must end at the blocking plane")
	assert.InDelta(t, 10, last.Y, eps)
}

func TestTraceRayDeterministic(t *testing.T) {
	s := NewSystem()
	mustAdd(t, s, 120, 10, 30)
	mustAdd(t, s, -45, 70, 30)

	a := NewRay(-20, 3, 0.04)
	b := NewRay(-20, 3, 0.04)
	s.TraceRay(a)
	s.TraceRay(b)
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.U, b.U)
}

func TestSystemMatrixEmpty(t *testing.T) {
	assert.Nil(t, NewSystem().SystemMatrix())
}

func TestSystemMatrixSingleLens(t *testing.T) {
	s := NewSystem()
	mustAdd(t, s, 100, 42, 25)
	m := s.SystemMatrix()
	require.NotNil(t, m)
	assert.EqualValues(t, 1, m.A)
	assert.EqualValues(t, 0, m.B)
	assert.InDelta(t, -1.0/100, m.C, eps)
	assert.EqualValues(t, 1, m.D)
}

func TestSystemMatrixTwoLenses(t *testing.T) {
	// R(f2) * T(d) * R(f1) by hand for f1=f2=100, d=50
	s := NewSystem()
	mustAdd(t, s, 100, 0, 25)
	mustAdd(t, s, 100, 50, 25)
	m := s.SystemMatrix()
	require.NotNil(t, m)
	assert.InDelta(t, 0.5, m.A, eps)
	assert.InDelta(t, 50, m.B, eps)
	assert.InDelta(t, -0.015, m.C, eps)
	assert.InDelta(t, 0.5, m.D, eps)
}

func TestAfocalParallelInParallelOut(t *testing.T) {
	// matched pair with d = f1+f2 has zero net power: the exit slope is
	// D·u regardless of height, so parallel rays leave parallel. For the
	// symmetric relay D = -1.
	s := NewSystem()
	mustAdd(t, s, 100, 0, 50)
	mustAdd(t, s, 100, 200, 50)

	a := NewRay(-10, 0, 0.02)
	b := NewRay(-10, 5, 0.02)
	s.TraceRay(a)
	s.TraceRay(b)
	require.True(t, a.Active)
	require.True(t, b.Active)
	assert.InDelta(t, -0.02, a.U, eps)
	assert.InDelta(t, a.U, b.U, eps)
}

func TestAfocalCancelingPairKeepsSlope(t *testing.T) {
	// a converging lens canceled by its diverging twin at the same plane
	// (d = f1+f2 = 0) returns every ray's slope unchanged
	s := NewSystem()
	mustAdd(t, s, 100, 40, 50)
	mustAdd(t, s, -100, 40, 50)

	r := NewRay(0, 3, 0.02)
	s.TraceRay(r)
	require.True(t, r.Active)
	assert.InDelta(t, 0.02, r.U, eps)
}
