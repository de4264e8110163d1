package gamemath

// Rise names the axis direction along which a ramp climbs.
type Rise string

const (
	RiseNone   Rise = ""
	RisePlusX  Rise = "+x"
	RiseMinusX Rise = "-x"
	RisePlusZ  Rise = "+z"
	RiseMinusZ Rise = "-z"
)

// Valid reports whether r is a known rise direction.
func (r Rise) Valid() bool {
	switch r {
	case RiseNone, RisePlusX, RiseMinusX, RisePlusZ, RiseMinusZ:
		return true
	}
	return false
}

// GetRampSurfaceY calculates the height of a ramp's walking surface at (x, z).
// The ramp footprint starts at (minX, minZ) and spans w by d. It climbs from
// low to high along rise; a flat piece (RiseNone) is always at high.
func GetRampSurfaceY(minX, minZ, w, d, low, high float64, rise Rise, x, z float64) float64 {
	var t float64
	switch rise {
	case RisePlusX:
		t = (x - minX) / w
	case RiseMinusX:
		t = 1 - (x-minX)/w
	case RisePlusZ:
		t = (z - minZ) / d
	case RiseMinusZ:
		t = 1 - (z-minZ)/d
	default:
		return high
	}
	return low + (high-low)*Clamp01(t)
}
