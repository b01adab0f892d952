// stability.go implements the LSF stability guard.

package golpc

import (
	"fmt"

	"github.com/thesyncim/golpc/internal/lsf"
)

// Stability defaults, in radians at 8 kHz.
const (
	DefaultStabilityPasses = lsf.DefaultPasses
	LSFMinGap              = lsf.DefaultMinGap  // 50 Hz
	LSFHalfGap             = lsf.DefaultHalfGap // 25 Hz
	LSFMin                 = lsf.DefaultMin
	LSFMax                 = lsf.DefaultMax // 4000 Hz
)

// StabilityGuard repairs LSF tables in place so adjacent values are at
// least LSFMinGap apart and every value lies in [LSFMin, LSFMax].
//
// The guard runs a fixed number of passes and does not iterate to
// convergence. Tables with many near-coincident values may still violate
// the minimum gap afterwards; Violations reports how many pairs do.
type StabilityGuard struct {
	g lsf.Guard
}

// NewStabilityGuard returns a guard running the given number of passes.
func NewStabilityGuard(passes int) (*StabilityGuard, error) {
	if passes < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPasses, passes)
	}
	g := lsf.DefaultGuard()
	g.Passes = passes
	return &StabilityGuard{g: g}, nil
}

// Passes returns the configured pass budget.
func (s *StabilityGuard) Passes() int { return s.g.Passes }

// Enforce repairs every row of table in place and reports whether any
// value changed. The caller must hold exclusive access to table.
func (s *StabilityGuard) Enforce(table [][]float64) bool {
	return s.g.Stabilize(table)
}

// Violations counts adjacent pairs in table closer than LSFMinGap.
func (s *StabilityGuard) Violations(table [][]float64) int {
	return s.g.Violations(table)
}

// OutOfRange counts values in table outside [LSFMin, LSFMax].
func (s *StabilityGuard) OutOfRange(table [][]float64) int {
	return s.g.OutOfRange(table)
}

// EnforceLSFStability repairs table with the default two-pass guard and
// reports whether any value changed.
func EnforceLSFStability(table [][]float64) bool {
	return lsf.DefaultGuard().Stabilize(table)
}
