package lpc

import (
	"math"
	"testing"

	"github.com/thesyncim/golpc/internal/testsignal"
)

func TestLevinsonDurbinSilentFrame(t *testing.T) {
	for _, r0 := range []float64{0, 1e-20, -1} {
		const order = 10
		r := make([]float64, order+1)
		r[0] = r0
		r[1] = 0.5 // must be ignored
		a := make([]float64, order+1)
		k := make([]float64, order)
		for i := range a {
			a[i] = 7
		}
		for i := range k {
			k[i] = 7
		}

		alpha := LevinsonDurbin(a, k, r, order)
		if alpha != 0 {
			t.Errorf("r0=%v: alpha = %v, want 0", r0, alpha)
		}
		if a[0] != 1 {
			t.Errorf("r0=%v: a[0] = %v, want 1", r0, a[0])
		}
		for i := 1; i <= order; i++ {
			if a[i] != 0 {
				t.Errorf("r0=%v: a[%d] = %v, want 0", r0, i, a[i])
			}
		}
		for i, v := range k {
			if v != 0 {
				t.Errorf("r0=%v: k[%d] = %v, want 0", r0, i, v)
			}
		}
	}
}

func TestLevinsonDurbinAR1(t *testing.T) {
	const (
		order = 10
		rho   = 0.8
		tol   = 1e-12
	)
	r := testsignal.AR1Autocorrelation(rho, order)
	a := make([]float64, order+1)
	k := make([]float64, order)
	alpha := LevinsonDurbin(a, k, r, order)

	if math.Abs(a[1]+rho) > tol {
		t.Errorf("a[1] = %v, want %v", a[1], -rho)
	}
	for i := 2; i <= order; i++ {
		if math.Abs(a[i]) > tol {
			t.Errorf("a[%d] = %v, want 0", i, a[i])
		}
	}
	if math.Abs(k[0]+rho) > tol {
		t.Errorf("k[0] = %v, want %v", k[0], -rho)
	}
	for i := 1; i < order; i++ {
		if math.Abs(k[i]) > tol {
			t.Errorf("k[%d] = %v, want 0", i, k[i])
		}
	}
	if math.Abs(alpha-(1-rho*rho)) > tol {
		t.Errorf("alpha = %v, want %v", alpha, 1-rho*rho)
	}
}

func TestLevinsonDurbinSinusoid(t *testing.T) {
	// A pure sinusoid is perfectly predicted by a second-order filter
	// 1 - 2cos(w)z^-1 + z^-2.
	const tol = 1e-12
	for _, w := range []float64{0.3, 1.0, 2.2} {
		r := testsignal.SinusoidAutocorrelation(w, 2)
		a := make([]float64, 3)
		k := make([]float64, 2)
		alpha := LevinsonDurbin(a, k, r, 2)

		if math.Abs(a[1]+2*math.Cos(w)) > tol {
			t.Errorf("w=%v: a[1] = %v, want %v", w, a[1], -2*math.Cos(w))
		}
		if math.Abs(a[2]-1) > tol {
			t.Errorf("w=%v: a[2] = %v, want 1", w, a[2])
		}
		if math.Abs(k[0]+math.Cos(w)) > tol {
			t.Errorf("w=%v: k[0] = %v, want %v", w, k[0], -math.Cos(w))
		}
		if math.Abs(k[1]-1) > tol {
			t.Errorf("w=%v: k[1] = %v, want 1", w, k[1])
		}
		if math.Abs(alpha) > tol {
			t.Errorf("w=%v: alpha = %v, want 0", w, alpha)
		}
	}
}

func TestLevinsonDurbinSolvesNormalEquations(t *testing.T) {
	const order = 10
	x, err := testsignal.GenerateFrame(testsignal.VariantSpeechLikeV1, 8000, 240)
	if err != nil {
		t.Fatal(err)
	}
	w := testsignal.Hamming(len(x))
	Window(x, x, w)
	r := make([]float64, order+1)
	Autocorrelation(r, x, order)

	a := make([]float64, order+1)
	k := make([]float64, order)
	alpha := LevinsonDurbin(a, k, r, order)

	// sum_j a[j] r[|i-j|] = 0 for i = 1..order, and = alpha for i = 0.
	for i := 0; i <= order; i++ {
		var sum float64
		for j := 0; j <= order; j++ {
			d := i - j
			if d < 0 {
				d = -d
			}
			sum += a[j] * r[d]
		}
		want := 0.0
		if i == 0 {
			want = alpha
		}
		if math.Abs(sum-want) > 1e-8*r[0] {
			t.Errorf("row %d: residual %v, want %v", i, sum, want)
		}
	}

	for i, v := range k {
		if math.Abs(v) >= 1 {
			t.Errorf("k[%d] = %v, want |k| < 1", i, v)
		}
	}
	if alpha <= 0 || alpha > r[0] {
		t.Errorf("alpha = %v, want in (0, r[0]=%v]", alpha, r[0])
	}
}

func TestLevinsonDurbinMatchesOrderOne(t *testing.T) {
	r := []float64{2, 1}
	a := make([]float64, 2)
	k := make([]float64, 1)
	alpha := LevinsonDurbin(a, k, r, 1)
	if a[0] != 1 || a[1] != -0.5 || k[0] != -0.5 {
		t.Fatalf("a = %v, k = %v", a, k)
	}
	if alpha != 1.5 {
		t.Fatalf("alpha = %v, want 1.5", alpha)
	}
}

func TestLevinsonDurbinSingularAutocorrelation(t *testing.T) {
	// The sinusoid is fully predicted at order 2; orders 3.. divide by a
	// zero prediction error.
	const order = 10
	r := testsignal.SinusoidAutocorrelation(1.0, order)
	a := make([]float64, order+1)
	k := make([]float64, order)
	alpha := LevinsonDurbin(a, k, r, order)

	if a[0] != 1 {
		t.Fatalf("a[0] = %v, want 1", a[0])
	}
	nonFinite := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
	if !nonFinite(alpha) {
		t.Errorf("alpha = %v, want NaN or Inf", alpha)
	}
	bad := 0
	for _, v := range k[2:] {
		if nonFinite(v) {
			bad++
		}
	}
	for _, v := range a[1:] {
		if nonFinite(v) {
			bad++
		}
	}
	if bad == 0 {
		t.Errorf("expected non-finite coefficients, got a=%v k=%v", a, k)
	}
}
