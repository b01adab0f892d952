// Package vq implements nearest-neighbor quantization against fixed,
// caller-supplied codebooks.
package vq

// Scalar quantizes x against cb, which must be sorted ascending and
// non-empty. It returns the index of the nearest entry and its value.
// A value exactly at the midpoint of two entries maps to the higher one.
// NaN maps to entry 0.
func Scalar(x float64, cb []float64) (int, float64) {
	if len(cb) == 1 || !(x > cb[0]) {
		return 0, cb[0]
	}

	i := 0
	for x > cb[i] && i < len(cb)-1 {
		i++
	}

	if x >= (cb[i]+cb[i-1])/2 {
		return i, cb[i]
	}
	return i - 1, cb[i-1]
}
