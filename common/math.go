package common

// Logical screen size the host renders at before ebiten scales it.
const (
	BaseWidth  = 960
	BaseHeight = 540
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
