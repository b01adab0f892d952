package lpc

// Epsilon is the energy floor below which the recursion is skipped and a
// flat filter is returned.
const Epsilon = 2.220446e-16

// LevinsonDurbin solves for the LPC coefficients a[0..order] and reflection
// coefficients k[0..order-1] from the autocorrelation r[0..order].
// a[0] is always 1. It returns the final prediction error energy.
//
// If r[0] < Epsilon the frame is treated as silent: a = [1, 0, ...],
// k = 0 and the returned energy is 0.
//
// No other input is special-cased. An exactly singular r, such as the
// autocorrelation of a pure sinusoid analyzed above order 2, drives the
// prediction error to zero and the following orders divide by it, leaving
// Inf or NaN in a, k and the returned energy. Windowed frames of real
// signals give a positive definite r and do not hit this.
func LevinsonDurbin(a, k, r []float64, order int) float64 {
	a[0] = 1.0
	if order <= 0 {
		return r[0]
	}

	if r[0] < Epsilon {
		for i := 0; i < order; i++ {
			k[i] = 0
			a[i+1] = 0
		}
		return 0
	}

	k[0] = -r[1] / r[0]
	a[1] = k[0]
	alpha := r[0] + r[1]*k[0]

	for m := 1; m < order; m++ {
		sum := r[m+1]
		for i := 0; i < m; i++ {
			sum += a[i+1] * r[m-i]
		}
		k[m] = -sum / alpha
		alpha += k[m] * sum

		// Symmetric butterfly: a[i+1] and a[m-i] are updated as a pair.
		mh := (m + 1) >> 1
		for i := 0; i < mh; i++ {
			lo := a[i+1] + k[m]*a[m-i]
			a[m-i] += k[m] * a[i+1]
			a[i+1] = lo
		}
		a[m+1] = k[m]
	}
	return alpha
}
