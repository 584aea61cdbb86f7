// Package numkit: sentinel error set for the evaluation primitives.
// Engines MUST propagate these untouched and tests MUST check them via
// errors.Is. Domain errors are NOT represented here: invalid inputs
// yield NaN results, never an error.

package numkit

import "errors"

var (
	// ErrMaxIterations is returned when a series or continued fraction
	// fails to converge within Policy.MaxIterations terms.
	ErrMaxIterations = errors.New("numkit: iteration budget exhausted before convergence")

	// ErrDiverged is returned when a continued fraction's running value
	// becomes non-finite, indicating genuine divergence rather than a
	// slow-to-converge expansion.
	ErrDiverged = errors.New("numkit: continued fraction diverged to a non-finite value")

	// ErrZeroDelta is returned when a Lentz delta factor collapses to
	// exactly zero, which would stall the recurrence forever.
	ErrZeroDelta = errors.New("numkit: continued fraction delta collapsed to zero")
)
