// Package numkit provides the low-level evaluation primitives shared by
// every special-function engine in lvlmath: series summation (plain and
// Kahan-compensated), generalized continued fractions via the modified
// Lentz algorithm, Horner polynomial evaluation, and small
// extended-precision helpers.
//
// All iterative primitives are driven by a Policy value:
//
//	pol := numkit.DefaultPolicy() // eps = 2⁻⁵³, MaxIterations = 1_000_000
//	sum, err := numkit.SumSeries(next, 0, pol)
//
// Termination contract:
//   - a series terminates once the next term no longer moves the sum
//     within the relative tolerance Policy.Eps;
//   - a continued fraction terminates once the Lentz delta factor is
//     within Eps of one;
//   - if MaxIterations is exhausted first the call fails with
//     ErrMaxIterations; there are no silent partial results.
//
// Domain errors never surface here: generators are expected to produce
// finite terms for valid inputs, and invalid mathematical inputs are
// mapped to NaN by the calling engines before any primitive runs.
package numkit
