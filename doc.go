// Package lvlmath is a library of special mathematical functions for
// float64: gamma, incomplete gamma, beta, incomplete beta, error
// functions and their inverses, plus supporting combinatorics and
// angle-normalization utilities.
//
// 🚀 What is lvlmath?
//
//	A pure-Go, dependency-light numeric kernel for downstream
//	statistical and scientific code:
//	  • Gamma family: Γ(z), ln|Γ(z)|, Γ(1+dz)−1, gamma ratios
//	  • Incomplete gamma: γ(a,x), Γ(a,x), regularized P(a,x), Q(a,x)
//	  • Beta family: B(a,b), ln B(a,b), incomplete/regularized beta
//	  • Error functions: erf, erfc, erfcx and their inverses
//	  • Combinatorics: factorials, binomial coefficients, Stirling numbers
//	  • Angle normalization in turns, radians and degrees
//
// ✨ Why choose lvlmath?
//
//   - Full float64 range — careful power-term and log-space fallbacks
//     avoid spurious overflow/underflow at extreme arguments
//   - Predictable failure model — invalid inputs yield NaN; only a
//     blown iteration budget or detected divergence yields an error
//   - Pure functions — no shared mutable state, safe for concurrent use
//     with no locking
//
// Everything is organized under six subpackages:
//
//	numkit/ — series summation, continued fractions, polynomial evaluation, Policy
//	erf/    — error functions and inverses
//	gamma/  — gamma, log-gamma, gamma ratios, incomplete gamma engine
//	beta/   — beta, log-beta, incomplete beta engine
//	combin/ — factorials, binomial coefficients, Stirling numbers
//	angle/  — angle normalization utilities
//
// Evaluation of the incomplete functions is driven by a per-call
// numkit.Policy{Eps, MaxIterations}; omit it to use the process-wide
// default (eps = 2⁻⁵³, one million iterations).
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
