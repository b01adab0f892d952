package lpc

// BandwidthExpansion writes out[0] = in[0] and out[i] = in[i]*coef^i,
// moving the filter poles toward the origin. out may alias in.
func BandwidthExpansion(out, in []float64, coef float64) {
	if len(in) == 0 {
		return
	}
	chirp := coef
	out[0] = in[0]
	for i := 1; i < len(in); i++ {
		out[i] = chirp * in[i]
		chirp *= coef
	}
}

// Interpolate writes out[i] = coef*a[i] + (1-coef)*b[i] for i < len(out).
// coef outside [0, 1] extrapolates.
func Interpolate(out, a, b []float64, coef float64) {
	inv := 1.0 - coef
	a = a[:len(out)]
	b = b[:len(out)]
	for i := range out {
		out[i] = coef*a[i] + inv*b[i]
	}
}
