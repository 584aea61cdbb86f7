// Package gamma computes the gamma function family for float64: Gamma,
// LogGamma (with an optional sign channel for negative arguments),
// Gamma1pm1, ratios of gamma functions, and the regularised incomplete
// gamma functions P and Q with their non-normalised companions.
//
// 🚀 How it works
//
//	The closed-form functions rest on a 13-term Lanczos approximation
//	(g ≈ 6.0247) plus dedicated rational fits for log-gamma near its
//	two positive roots, where the Lanczos form alone would cancel.
//	Arguments below the fitted range are shifted up by the recurrence
//	Γ(z+1) = z·Γ(z); negative arguments go through the reflection
//	formula with a cancellation-free z·sin(πz).
//
//	The incomplete functions P(a,x) and Q(a,x) pick one of eight
//	evaluation methods depending on where (a, x) lands: finite sums
//	for small integer and half-integer a, a lower series, an upper
//	continued fraction, a dedicated small-a/small-x series, a large-x
//	asymptotic expansion, and Temme's uniform asymptotic expansion
//	when a is large and x ≈ a. Whatever the method, the complement is
//	always obtained from the better-conditioned direction first.
//
// ✨ Contracts
//
//	Closed-form functions (Gamma, LogGamma, ratios) return bare
//	float64: domain errors yield NaN, poles yield ±Inf per the sign of
//	the approach. Iterative functions (GammaP, GammaQ, IncompleteLower,
//	IncompleteUpper) additionally return an error from the numkit
//	sentinels when a series or continued fraction fails to converge;
//	they accept an optional trailing numkit.Policy to override the
//	default tolerance and iteration budget.
//
// Exact factorials up to 170! are served from a table built once at
// package init, so Gamma(n) for integer n is correctly rounded.
package gamma
