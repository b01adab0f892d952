// Package dsp provides the float64 vector kernels shared by the LPC and
// quantization packages.
package dsp

var (
	dotImpl = dotGo
	mulImpl = mulGo

	accelerated bool
)

// Accelerated reports whether the SIMD kernels were selected at init.
func Accelerated() bool { return accelerated }

// Dot returns the inner product of a[:n] and b[:n], n = min(len(a), len(b)).
// Accumulation order depends on the selected kernel but is fixed for the
// lifetime of the process.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n <= 0 {
		return 0
	}
	return dotImpl(a[:n:n], b[:n:n])
}

// Mul writes a[i]*b[i] into dst for i < len(dst). dst may alias a or b.
func Mul(dst, a, b []float64) {
	n := len(dst)
	if n == 0 {
		return
	}
	mulImpl(dst, a[:n:n], b[:n:n])
}

// dotGo uses four accumulators to break the add dependency chain.
func dotGo(a, b []float64) float64 {
	b = b[:len(a)]
	var s0, s1, s2, s3 float64
	i := 0
	n := len(a) - 3
	for ; i < n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1 + s2 + s3
}

func mulGo(dst, a, b []float64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}
