// Package lpc implements the linear-prediction analysis kernels of the
// encoder front end: autocorrelation, windowing, the Levinson-Durbin
// recursion, bandwidth expansion and coefficient interpolation.
//
// All functions write into caller-owned buffers and never allocate.
package lpc

import "github.com/thesyncim/golpc/internal/dsp"

// Autocorrelation writes r[l] = sum_{n=0}^{N-l-1} x[n]*x[n+l] for
// l = 0..order. The result is not normalized. Lags at or beyond len(x)
// are zero.
//
// r must have length >= order+1.
func Autocorrelation(r, x []float64, order int) {
	n := len(x)
	for lag := 0; lag <= order; lag++ {
		if lag >= n {
			r[lag] = 0
			continue
		}
		r[lag] = dsp.Dot(x[:n-lag], x[lag:])
	}
}

// Window writes z[i] = x[i]*y[i] for i < len(z). z may alias x.
func Window(z, x, y []float64) {
	dsp.Mul(z, x, y)
}
