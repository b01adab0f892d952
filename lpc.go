// lpc.go implements the stateless correlation and linear prediction functions.

package golpc

import "github.com/thesyncim/golpc/internal/lpc"

// Epsilon is the energy floor below which LevinsonDurbin returns a flat
// filter.
const Epsilon = lpc.Epsilon

// Autocorrelation writes the unnormalized autocorrelation of x for lags
// 0..order into r, which must hold order+1 values.
func Autocorrelation(r, x []float64, order int) {
	lpc.Autocorrelation(r, x, order)
}

// Window writes the elementwise product of x and y into z. z may alias x.
func Window(z, x, y []float64) {
	lpc.Window(z, x, y)
}

// LevinsonDurbin computes LPC coefficients a[0..order] (a[0] = 1) and
// reflection coefficients k[0..order-1] from r[0..order], returning the
// residual prediction error energy. A silent frame (r[0] < Epsilon) gives a
// flat filter; an exactly singular r gives non-finite coefficients.
func LevinsonDurbin(a, k, r []float64, order int) float64 {
	return lpc.LevinsonDurbin(a, k, r, order)
}

// BandwidthExpansion writes out[i] = in[i]*coef^i. out may alias in.
func BandwidthExpansion(out, in []float64, coef float64) {
	lpc.BandwidthExpansion(out, in, coef)
}

// Interpolate writes coef*a + (1-coef)*b into out. coef is not clamped.
func Interpolate(out, a, b []float64, coef float64) {
	lpc.Interpolate(out, a, b, coef)
}
