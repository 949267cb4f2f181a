package scale

// Group buckets a size in meters into a coarse scale domain, used for
// labelling browse output.
func Group(meters float64) string {
	switch {
	case meters < 1e-15:
		return "Quantum"
	case meters < 1e-9:
		return "Atomic"
	case meters < 1e-6:
		return "Molecular"
	case meters < 1e-3:
		return "Cellular"
	case meters < 1e3:
		return "Everyday"
	case meters < 1e7:
		return "Geographic"
	case meters < 1e9:
		return "Planetary"
	case meters < 1e12:
		return "Stellar"
	default:
		return "Galactic"
	}
}
