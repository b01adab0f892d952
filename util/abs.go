// Package util provides common numeric helpers for golpc.
package util

// Signed is a constraint for signed integer and float types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]. It reports whether x was changed.
func Clamp[T Signed](x, lo, hi T) (T, bool) {
	if x < lo {
		return lo, true
	}
	if x > hi {
		return hi, true
	}
	return x, false
}
