// errors.go defines public error types for the golpc package.

package golpc

import "errors"

// Configuration errors returned by the constructors.
var (
	// ErrInvalidOrder indicates an LPC order outside 1..MaxOrder.
	ErrInvalidOrder = errors.New("golpc: invalid LPC order")

	// ErrInvalidWindow indicates an analysis window that is too short for
	// the configured order.
	ErrInvalidWindow = errors.New("golpc: invalid analysis window (length must exceed order)")

	// ErrInvalidLagWindow indicates a lag window whose length is not order+1.
	ErrInvalidLagWindow = errors.New("golpc: invalid lag window (length must be order+1)")

	// ErrInvalidChirp indicates a bandwidth expansion factor outside (0, 1].
	ErrInvalidChirp = errors.New("golpc: invalid chirp factor (must be in (0, 1])")

	// ErrInvalidFrameSize indicates the frame length does not match the window.
	ErrInvalidFrameSize = errors.New("golpc: invalid frame size")

	// ErrInvalidCodebook indicates an empty codebook or one whose length is
	// not a multiple of its dimension.
	ErrInvalidCodebook = errors.New("golpc: invalid codebook")

	// ErrUnsortedCodebook indicates a scalar codebook that is not ascending.
	ErrUnsortedCodebook = errors.New("golpc: scalar codebook must be sorted ascending")

	// ErrInvalidSplit indicates a split layout that does not match its
	// codebook.
	ErrInvalidSplit = errors.New("golpc: invalid split layout")

	// ErrInvalidDimension indicates an input vector of the wrong length.
	ErrInvalidDimension = errors.New("golpc: invalid vector dimension")

	// ErrInvalidPasses indicates a stability pass budget below 1.
	ErrInvalidPasses = errors.New("golpc: invalid stability pass count (must be >= 1)")
)
