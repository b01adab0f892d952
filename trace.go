// trace.go implements opt-in tracing of Analyzer intermediates.

package golpc

import (
	"math"

	"github.com/thesyncim/golpc/internal/dsp"
	"github.com/thesyncim/golpc/util"
)

// AnalysisTrace captures intermediate values of Analyzer.Analyze for
// debugging and regression checks. Fields describe the most recent frame
// except Frames, which counts frames since the trace was attached.
type AnalysisTrace struct {
	CaptureWindowed bool
	CaptureAutocorr bool

	WindowedHash uint64
	WindowedLen  int
	Windowed     []float64 // copied when CaptureWindowed is true

	AutocorrHash uint64
	Autocorr     []float64 // copied when CaptureAutocorr is true

	LPCHash      uint64
	ExpandedHash uint64

	Order         int
	Silent        bool    // energy below Epsilon, flat filter returned
	MaxReflection float64 // max |k|
	Alpha         float64
	Accelerated   bool // SIMD kernels in use
	Frames        int
}

func (t *AnalysisTrace) record(windowed []float64, res *Result, order int) {
	t.Frames++
	t.Order = order
	t.Accelerated = dsp.Accelerated()

	t.WindowedHash = hashFloat64Slice(windowed)
	t.WindowedLen = len(windowed)
	if t.CaptureWindowed {
		t.Windowed = append(t.Windowed[:0], windowed...)
	}

	t.AutocorrHash = hashFloat64Slice(res.R)
	if t.CaptureAutocorr {
		t.Autocorr = append(t.Autocorr[:0], res.R...)
	}

	t.LPCHash = hashFloat64Slice(res.A)
	t.ExpandedHash = hashFloat64Slice(res.AExpanded)
	t.Silent = res.R[0] < Epsilon
	t.Alpha = res.Alpha

	t.MaxReflection = 0
	for _, k := range res.K {
		t.MaxReflection = max(t.MaxReflection, util.Abs(k))
	}
}

func hashFloat64Slice(vals []float64) uint64 {
	var h uint64 = 1469598103934665603
	const prime uint64 = 1099511628211
	for _, v := range vals {
		h ^= math.Float64bits(v)
		h *= prime
	}
	return h
}
