package paraxial

const (
	// DefaultApertureHalfHeight is used when a lens is added without an
	// explicit clear-aperture radius.
	DefaultApertureHalfHeight = 50.0
	// DefaultRayCount is the fan size used when a system description does
	// not ask for a specific number of rays.
	DefaultRayCount = 7

	// hot-loop constants reused across traces
	posEps    = 1e-9  // "ray already at lens plane" tolerance
	powerEps  = 1e-10 // below this |C| (or image denominator) the quantity is at infinity
	traceTail = 1000  // cosmetic path extension past the last lens; never used in any derived quantity

	fanFill     = 0.95 // fraction of the first aperture a ray fan fills
	distantLead = 500  // how far before the first lens a distant-source ray starts
)
