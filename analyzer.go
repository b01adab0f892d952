// analyzer.go implements the Analyzer LPC analysis pipeline.

package golpc

import (
	"fmt"

	"github.com/thesyncim/golpc/internal/lpc"
)

const (
	// DefaultOrder is the LPC order of narrowband speech analysis.
	DefaultOrder = 10

	// MaxOrder bounds the configurable LPC order.
	MaxOrder = 32

	// DefaultChirp is the bandwidth expansion factor applied to the
	// analysis filter.
	DefaultChirp = 0.9025
)

// Config configures an Analyzer.
type Config struct {
	// Order is the LPC order (1..MaxOrder).
	Order int

	// Window is the analysis window; its length fixes the frame size.
	Window []float64

	// LagWindow, if non-nil, is applied to the autocorrelation before the
	// recursion. It must hold Order+1 values.
	LagWindow []float64

	// Chirp is the bandwidth expansion factor in (0, 1].
	Chirp float64
}

// DefaultConfig returns a Config using window, DefaultOrder and
// DefaultChirp, with no lag window.
func DefaultConfig(window []float64) Config {
	return Config{
		Order:  DefaultOrder,
		Window: window,
		Chirp:  DefaultChirp,
	}
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.Order < 1 || c.Order > MaxOrder {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, c.Order)
	}
	if len(c.Window) <= c.Order {
		return fmt.Errorf("%w: got %d samples for order %d", ErrInvalidWindow, len(c.Window), c.Order)
	}
	if c.LagWindow != nil && len(c.LagWindow) != c.Order+1 {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidLagWindow, len(c.LagWindow), c.Order+1)
	}
	if !(c.Chirp > 0 && c.Chirp <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidChirp, c.Chirp)
	}
	return nil
}

// Result holds the output of one analyzed frame. Slices are reused across
// calls to Analyze.
type Result struct {
	R         []float64 // autocorrelation, lag-windowed if configured
	A         []float64 // LPC coefficients, A[0] = 1
	K         []float64 // reflection coefficients
	AExpanded []float64 // bandwidth-expanded LPC coefficients
	Alpha     float64   // residual prediction error energy
}

// Analyzer runs the LPC analysis chain over fixed-size frames:
// window, autocorrelation, optional lag window, Levinson-Durbin and
// bandwidth expansion.
//
// An Analyzer reuses internal scratch and is NOT safe for concurrent use.
// Each goroutine should create its own Analyzer.
type Analyzer struct {
	order     int
	chirp     float64
	window    []float64
	lagWindow []float64
	windowed  []float64

	trace *AnalysisTrace
}

// NewAnalyzer validates cfg and creates an Analyzer. The window tables are
// copied.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{
		order:    cfg.Order,
		chirp:    cfg.Chirp,
		window:   append([]float64(nil), cfg.Window...),
		windowed: make([]float64, len(cfg.Window)),
	}
	if cfg.LagWindow != nil {
		a.lagWindow = append([]float64(nil), cfg.LagWindow...)
	}
	return a, nil
}

// Order returns the configured LPC order.
func (a *Analyzer) Order() int { return a.order }

// FrameSize returns the number of samples Analyze expects.
func (a *Analyzer) FrameSize() int { return len(a.window) }

// SetTrace enables or disables analysis tracing. A non-nil trace is
// populated by every subsequent Analyze call.
func (a *Analyzer) SetTrace(trace *AnalysisTrace) {
	a.trace = trace
}

// NewResult allocates a Result sized for this Analyzer.
func (a *Analyzer) NewResult() *Result {
	res := &Result{}
	a.sizeResult(res)
	return res
}

func (a *Analyzer) sizeResult(res *Result) {
	res.R = ensureLen(res.R, a.order+1)
	res.A = ensureLen(res.A, a.order+1)
	res.K = ensureLen(res.K, a.order)
	res.AExpanded = ensureLen(res.AExpanded, a.order+1)
}

func ensureLen(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

// Analyze runs the analysis chain on frame and stores the result in res.
// frame must hold FrameSize samples; it is not modified.
func (a *Analyzer) Analyze(frame []float64, res *Result) error {
	if len(frame) != len(a.window) {
		return fmt.Errorf("%w: got %d samples, want %d", ErrInvalidFrameSize, len(frame), len(a.window))
	}
	a.sizeResult(res)

	lpc.Window(a.windowed, frame, a.window)
	lpc.Autocorrelation(res.R, a.windowed, a.order)
	if a.lagWindow != nil {
		lpc.Window(res.R, res.R, a.lagWindow)
	}
	res.Alpha = lpc.LevinsonDurbin(res.A, res.K, res.R, a.order)
	lpc.BandwidthExpansion(res.AExpanded, res.A, a.chirp)

	if a.trace != nil {
		a.trace.record(a.windowed, res, a.order)
	}
	return nil
}
