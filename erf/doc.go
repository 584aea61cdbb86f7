// Package erf computes the error function family for float64: erf,
// erfc, the scaled complement erfcx, and the inverses of erf and erfc.
//
// 🚀 How it works
//
//	A single case-split implementation keyed on the sign and magnitude
//	of x picks among rational minimax approximations over the domains
//	[0, 0.5), [0.5, 1.5), [1.5, 2.5), [2.5, 4.5) and [4.5, ∞). The
//	complementary branches share their rationals with erfcx, which
//	simply omits the exp(−x²) factor and therefore never underflows.
//	exp(−x²) itself is evaluated with a split-double (Dekker) product
//	so accuracy survives down to the sub-normal range.
//
// The saturation thresholds (erf(x) = 1 for x ≥ 5.93 and erfc(x) = 0
// for x ≥ 27.3) are tuned against these approximations, not textbook
// values; do not "correct" them.
//
// Inverses use further domain-split rational approximations keyed on
// sqrt(−log(q)).
//
// Every function here is closed-form (no iteration), so the package
// takes no numkit.Policy and returns no error: out-of-domain inputs
// yield NaN, per the library-wide convention.
package erf
