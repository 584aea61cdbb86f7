package combin

import (
	"math"

	"github.com/katalvlaran/lvlmath/gamma"
)

// maxExactFactorial is the largest n with n! representable in an int64.
const maxExactFactorial = 20

// Factorial returns n! exactly. Fails with ErrDomain for negative n and
// ErrOverflow for n > 20, past which n! no longer fits in an int64.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, ErrDomain
	}
	if n > maxExactFactorial {
		return 0, ErrOverflow
	}

	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}

	return result, nil
}

// FactorialDouble evaluates n! as a float64, optionally backed by a
// precomputed cache. The zero value works without any cache; WithCache
// returns a new instance and leaves the receiver untouched, so values
// are safe to share between goroutines.
type FactorialDouble struct {
	cache []float64
}

// NewFactorialDouble returns an evaluator with no cache.
func NewFactorialDouble() FactorialDouble {
	return FactorialDouble{}
}

// WithCache returns a copy of f whose values for n < size are served
// from a freshly built table. Sizes beyond the float64 factorial range
// are clamped, a smaller size than the current cache just re-slices it.
func (f FactorialDouble) WithCache(size int) FactorialDouble {
	if size <= 0 {
		return FactorialDouble{}
	}
	if size > gamma.MaxFactorial+1 {
		size = gamma.MaxFactorial + 1
	}
	if size <= len(f.cache) {
		return FactorialDouble{cache: f.cache[:size]}
	}

	cache := make([]float64, size)
	copy(cache, f.cache)
	for i := len(f.cache); i < size; i++ {
		cache[i] = gamma.Factorial(i)
	}

	return FactorialDouble{cache: cache}
}

// Value returns n! as a float64: NaN for negative n, +Inf for n > 170.
func (f FactorialDouble) Value(n int) float64 {
	if n >= 0 && n < len(f.cache) {
		return f.cache[n]
	}

	return gamma.Factorial(n)
}

// LogFactorial returns log(n!), finite for every non-negative n.
// Negative n yields NaN.
func LogFactorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n <= gamma.MaxFactorial {
		return math.Log(gamma.Factorial(n))
	}

	return gamma.LogGamma(float64(n) + 1)
}
