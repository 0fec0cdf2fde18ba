package paraxial

// PathPoint is one recorded (z, y) sample along a traced ray.
type PathPoint struct {
	Z Real `json:"z"`
	Y Real `json:"y"`
}

// Ray is the evolving state of one meridional ray plus the path it has
// covered so far. Rays are cheap and rebuilt for every recomputation;
// a traced ray is stale the moment any lens changes.
type Ray struct {
	Z      Real // axial position
	Y      Real // height above the axis
	U      Real // slope (paraxial angle tangent)
	Active bool
	Path   []PathPoint
}

// NewRay starts an active ray at (z, y) with slope u; the path opens with
// the initial sample, so it is never empty.
func NewRay(z, y, u Real) *Ray {
	return &Ray{
		Z:      z,
		Y:      y,
		U:      u,
		Active: true,
		Path:   []PathPoint{{Z: z, Y: y}},
	}
}

// Propagate advances the ray in a straight line to targetZ and records the
// arrival point. targetZ may lie behind the ray; nothing forbids moving
// backward, the engine just never does it on its own.
func (r *Ray) Propagate(targetZ Real) {
	if !r.Active {
		return
	}
	r.Y += r.U * (targetZ - r.Z)
	r.Z = targetZ
	r.Path = append(r.Path, PathPoint{Z: r.Z, Y: r.Y})
}

// Refract bends the ray at its current plane per the thin-lens relation
// u' = u - y/f. Position, height and path are untouched.
// Contract: f must be non-zero; the system never passes a degenerate lens.
func (r *Ray) Refract(focalLength Real) {
	if !r.Active {
		return
	}
	r.U -= r.Y / focalLength
}

// Stop retires the ray permanently; every later operation is a no-op.
func (r *Ray) Stop() {
	r.Active = false
}
