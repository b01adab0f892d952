// Package golpc implements the linear-prediction analysis and quantization
// front end of a low-bit-rate speech encoder in pure Go.
//
// It turns a windowed speech frame into LPC and reflection coefficients,
// repairs line spectral frequency (LSF) vectors so the decoder filter stays
// stable, and reduces parameter vectors to codebook indices.
//
// # Components
//
//   - Correlation: Autocorrelation and Window
//   - Linear prediction: LevinsonDurbin and BandwidthExpansion
//   - Interpolation: Interpolate
//   - Quantization: ScalarCodebook, Codebook and SplitCodebook
//   - Stability: StabilityGuard
//
// The free functions are pure transforms over caller-owned buffers and are
// safe for concurrent use on disjoint buffers. They trust their buffer
// sizes; the constructors (NewAnalyzer, NewCodebook, NewScalarCodebook,
// NewSplitCodebook, NewStabilityGuard) validate sizes once and return an
// error for inconsistent configuration.
//
// # Degenerate input
//
// Numeric kernels never return errors. A frame whose energy is below
// Epsilon yields a flat filter (a = [1, 0, ...]) and zero reflection
// coefficients. An exactly singular autocorrelation (a pure sinusoid with
// no window, analyzed above order 2) is not special-cased and yields
// non-finite coefficients; see LevinsonDurbin. LSF
// repair runs a fixed number of passes and does not guarantee convergence;
// use StabilityGuard.Violations to check the result when it matters.
//
// # Analyzer
//
// Analyzer chains window, autocorrelation, optional lag window,
// Levinson-Durbin and bandwidth expansion with scratch buffers reused
// across frames. An Analyzer is NOT safe for concurrent use.
package golpc
