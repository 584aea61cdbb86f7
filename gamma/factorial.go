package gamma

import (
	"math"
	"math/big"
)

// MaxFactorial is the largest n with n! representable as a float64;
// 171! overflows to +Inf.
const MaxFactorial = 170

// factorials holds correctly rounded n! for n in [0, MaxFactorial].
// Built once at init from exact integers, so every entry is the
// nearest float64 to the true value.
var factorials [MaxFactorial + 1]float64

func init() {
	f := big.NewInt(1)
	factorials[0] = 1
	for n := int64(1); n <= MaxFactorial; n++ {
		f.Mul(f, big.NewInt(n))
		v, _ := new(big.Float).SetInt(f).Float64()
		factorials[n] = v
	}
}

// Factorial returns n! for n >= 0, +Inf once the result exceeds the
// float64 range, and NaN for negative n.
func Factorial(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n > MaxFactorial:
		return math.Inf(1)
	default:
		return factorials[n]
	}
}
