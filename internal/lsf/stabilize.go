// Package lsf enforces minimum separation and range bounds on line spectral
// frequency vectors.
//
// LSF values are in radians at an 8 kHz sampling rate, so pi corresponds to
// 4000 Hz.
package lsf

import "github.com/thesyncim/golpc/util"

const (
	DefaultPasses  = 2
	DefaultMinGap  = 0.039  // 50 Hz
	DefaultHalfGap = 0.0195 // 25 Hz
	DefaultMin     = 0.01   // ~0 Hz
	DefaultMax     = 3.14   // 4000 Hz

	// gapTolerance absorbs rounding when checking separation after repair.
	gapTolerance = 1e-9
)

// Guard repairs LSF tables in a fixed number of passes. It does not iterate
// to convergence: inputs with many coincident values can still violate
// MinGap after Passes sweeps.
type Guard struct {
	Passes  int
	MinGap  float64
	HalfGap float64
	Min     float64
	Max     float64
}

// DefaultGuard returns the two-pass guard used by the encoder.
func DefaultGuard() Guard {
	return Guard{
		Passes:  DefaultPasses,
		MinGap:  DefaultMinGap,
		HalfGap: DefaultHalfGap,
		Min:     DefaultMin,
		Max:     DefaultMax,
	}
}

// Stabilize repairs every row of table in place and reports whether any
// value was changed.
func (g Guard) Stabilize(table [][]float64) bool {
	changed := false
	for n := 0; n < g.Passes; n++ {
		for _, v := range table {
			if g.stabilizeRow(v) {
				changed = true
			}
		}
	}
	return changed
}

func (g Guard) stabilizeRow(v []float64) bool {
	if len(v) == 0 {
		return false
	}
	changed := false
	for k := 0; k < len(v)-1; k++ {
		if v[k+1]-v[k] < g.MinGap {
			if v[k+1] < v[k] {
				// Inverted: swap and separate.
				lo := v[k+1]
				v[k+1] = v[k] + g.HalfGap
				v[k] = lo - g.HalfGap
			} else {
				v[k] -= g.HalfGap
				v[k+1] += g.HalfGap
			}
			changed = true
		}
		if g.clamp(v, k) {
			changed = true
		}
	}
	if g.clamp(v, len(v)-1) {
		changed = true
	}
	return changed
}

func (g Guard) clamp(v []float64, k int) bool {
	var c bool
	v[k], c = util.Clamp(v[k], g.Min, g.Max)
	return c
}

// Violations counts adjacent pairs in table closer than MinGap.
func (g Guard) Violations(table [][]float64) int {
	n := 0
	for _, v := range table {
		for k := 0; k+1 < len(v); k++ {
			if v[k+1]-v[k] < g.MinGap-gapTolerance {
				n++
			}
		}
	}
	return n
}

// OutOfRange counts values in table outside [Min, Max].
func (g Guard) OutOfRange(table [][]float64) int {
	n := 0
	for _, v := range table {
		for _, x := range v {
			if x < g.Min || x > g.Max {
				n++
			}
		}
	}
	return n
}
