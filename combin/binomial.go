package combin

import (
	"math"
	"math/bits"
)

// BinomialCoefficient returns C(n, k) exactly. Fails with ErrDomain for
// negative indices or k > n, and with ErrOverflow once the coefficient
// no longer fits in an int64. The multiplicative recurrence reduces
// each factor by its gcd with the divisor first, so intermediates never
// exceed the final value and near-boundary coefficients (such as
// C(66, 33)) come out exact.
func BinomialCoefficient(n, k int) (int64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, ErrDomain
	}
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return 1, nil
	}

	// result holds C(n-k+i, i) after step i, which is an integer, so
	// after cancelling gcd(m, i) the remaining divisor divides result
	// exactly.
	result := int64(1)
	for i := 1; i <= k; i++ {
		m := int64(n - k + i)
		d := int64(i)
		g := gcd(m, d)
		m /= g
		d /= g

		result /= d
		hi, lo := bits.Mul64(uint64(result), uint64(m))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, ErrOverflow
		}
		result = int64(lo)
	}

	return result, nil
}

// BinomialCoefficientDouble returns C(n, k) as a float64: exact while
// the value fits in an int64, the rounded exponential of LogBinomial
// beyond, and +Inf once even that overflows. Invalid indices yield NaN.
func BinomialCoefficientDouble(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.NaN()
	}
	if v, err := BinomialCoefficient(n, k); err == nil {
		return float64(v)
	}

	result := math.Exp(LogBinomial(n, k))
	if math.IsInf(result, 1) {
		return result
	}

	return math.Floor(result + 0.5)
}

// LogBinomial returns log(C(n, k)). Invalid indices yield NaN.
func LogBinomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.NaN()
	}
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return 0
	}
	if v, err := BinomialCoefficient(n, k); err == nil {
		return math.Log(float64(v))
	}

	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
