package numkit

import "math"

// Floating-point range constants used by the engines to decide when a
// direct pow/exp composition would overflow and a log-space or
// root-splitting fallback is needed.
const (
	// LogMaxValue is ln(MaxFloat64).
	LogMaxValue = 709.782712893384
	// LogMinValue is ln of the smallest normal float64.
	LogMinValue = -708.396418532264
	// MachEps is the float64 machine epsilon, 2⁻⁵².
	MachEps = 0x1p-52
	// RootEpsilon is sqrt(MachEps).
	RootEpsilon = 1.4901161193847656e-08
)

// Log1pmx computes log(1+x) − x with full relative accuracy, including
// near x = 0 where the direct expression loses every significant digit.
// The argument must satisfy x > −1; smaller arguments yield NaN.
func Log1pmx(x float64, pol Policy) (float64, error) {
	if x <= -1 || math.IsNaN(x) {
		return math.NaN(), nil
	}

	a := math.Abs(x)
	if a > 0.95 {
		return math.Log1p(x) - x, nil
	}
	if a < MachEps {
		return -x * x / 2, nil
	}

	// Taylor tail of log1p: −x²/2 + x³/3 − x⁴/4 + … Compensated
	// summation, since the callers multiply the result by large a and
	// any accumulation error with it.
	prod := -1.0
	k := 0.0
	next := func() float64 {
		prod *= -x
		k++

		return prod / k
	}
	next() // discard the leading x term

	return KahanSumSeries(next, 0, pol)
}

// Powm1 computes xʸ − 1 without cancellation when xʸ is close to one,
// via expm1(y·log x) where that is safe. Negative x requires an integer
// y (NaN otherwise), mirroring pow's domain.
func Powm1(x, y float64) float64 {
	if x > 0 {
		if math.Abs(y*(x-1)) < 0.5 || math.Abs(y) < 0.2 {
			// l = y·log(x) is small enough that expm1 wins.
			l := y * math.Log(x)
			if l < 0.5 {
				return math.Expm1(l)
			}
			if l > LogMaxValue {
				return math.Inf(1)
			}
		}
	} else if x < 0 {
		if math.Trunc(y) != y {
			return math.NaN()
		}
		if math.Trunc(y/2) == y/2 {
			// Even power: sign of x is irrelevant.
			return Powm1(-x, y)
		}
	}

	return math.Pow(x, y) - 1
}

// TwoSum returns s = fl(a+b) together with the exact rounding error e,
// so that a + b == s + e in exact arithmetic (Knuth's branch-free
// variant, no magnitude ordering required).
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	t := s - a
	e = (a - (s - t)) + (b - t)

	return s, e
}

// SumPrecise adds the given values, capturing the exact rounding error
// of every addition through TwoSum and folding the accumulated error
// back in at the end. The engines use it for the handful of hot sums
// (e.g. the log-gamma reflection formula) where plain left-to-right
// addition would cancel catastrophically.
func SumPrecise(values ...float64) float64 {
	var sum, comp float64
	for _, v := range values {
		var e float64
		sum, e = TwoSum(sum, v)
		comp += e
	}

	return sum + comp
}
