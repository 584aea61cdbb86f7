package numkit

import "math"

// TermFunc lazily produces the successive additive terms t₀, t₁, … of a
// series. Implementations are typically closures capturing an iteration
// counter and running products by value; they are never shared between
// concurrent evaluations.
type TermFunc func() float64

// Epsilon floors. A zero (or denormal) tolerance would never satisfy
// the termination test, so requests below these are clamped.
const (
	minSeriesEps = 0x1p-52
	minKahanEps  = 0x1p-62
)

// SumSeries accumulates terms from next starting at initValue until the
// latest term no longer affects the sum within pol.Eps relative
// tolerance: |term| <= |eps·sum|. Returns ErrMaxIterations if the
// budget runs out first.
func SumSeries(next TermFunc, initValue float64, pol Policy) (float64, error) {
	eps := math.Max(pol.Eps, minSeriesEps)

	sum := initValue
	for n := uint32(0); n < pol.MaxIterations; n++ {
		term := next()
		sum += term
		if math.Abs(term) <= math.Abs(eps*sum) {
			return sum, nil
		}
	}

	return sum, ErrMaxIterations
}

// KahanSumSeries is SumSeries with compensated (Kahan) accumulation: a
// carry term tracks the round-off lost on each addition, preserving
// contributions smaller than 1 ULP of the running sum. Use it for the
// handful of expansions whose tail terms matter below working
// precision; the epsilon floor is correspondingly lower (2⁻⁶²).
func KahanSumSeries(next TermFunc, initValue float64, pol Policy) (float64, error) {
	eps := math.Max(pol.Eps, minKahanEps)

	sum := initValue
	carry := 0.0
	for n := uint32(0); n < pol.MaxIterations; n++ {
		term := next()
		y := term - carry
		t := sum + y
		carry = (t - sum) - y
		sum = t
		if math.Abs(term) <= math.Abs(eps*sum) {
			return sum, nil
		}
	}

	return sum, ErrMaxIterations
}
