package gamma

import (
	"math"
)

// GammaDeltaRatio returns Γ(z) / Γ(z+delta) without forming either
// gamma value, so the ratio stays finite even when both would
// overflow. z and z+delta must be positive; anything else yields NaN.
func GammaDeltaRatio(z, delta float64) float64 {
	if math.IsNaN(z) || math.IsNaN(delta) {
		return math.NaN()
	}
	if z <= 0 || z+delta <= 0 {
		return math.NaN()
	}
	if math.IsInf(delta, 1) {
		return 0
	}
	if delta == 0 {
		return 1
	}

	return gammaDeltaRatioImp(z, delta)
}

func gammaDeltaRatioImp(z, delta float64) float64 {
	if math.Floor(delta) == delta {
		if math.Floor(z) == z && z < MaxFactorial+2 && z+delta < MaxFactorial+2 {
			// Both integers inside the table.
			return factorials[int(z)-1] / factorials[int(z+delta)-1]
		}
		if math.Abs(delta) < 20 {
			// Small integer shift: a finite product of recurrences.
			if delta == 0 {
				return 1
			}
			if delta < 0 {
				z--
				result := z
				for delta++; delta != 0; delta++ {
					z--
					result *= z
				}

				return result
			}
			result := 1 / z
			for delta--; delta != 0; delta-- {
				z++
				result /= z
			}

			return result
		}
	}

	// General Lanczos form:
	// Γ(z)/Γ(z+δ) = S(z)/S(z+δ) · (zgh/(zgh+δ))^(z−0.5) · (e/(zgh+δ))^δ.
	zgh := z + lanczosG - 0.5
	var result float64
	if z+delta == z || math.Abs(delta) < 10 {
		result = math.Exp((0.5 - z) * math.Log1p(delta/zgh))
	} else {
		result = math.Pow(zgh/(zgh+delta), z-0.5)
	}
	result *= math.Pow(math.E/(zgh+delta), delta)
	result *= lanczosSum(z) / lanczosSum(z+delta)

	return result
}

// GammaRatio returns Γ(x) / Γ(y) for positive finite x and y, staying
// in the representable range wherever the ratio itself is.
func GammaRatio(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}
	if x <= 0 || y <= 0 || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return math.NaN()
	}

	if x < MaxFactorial+1 && y < MaxFactorial+1 {
		// Both gammas representable, the plain quotient is cheapest.
		return gammaImp(x) / gammaImp(y)
	}

	if x < 1 || y < 1 {
		// One argument tiny and the other huge; log space is the only
		// path that neither overflows nor underflows prematurely.
		lgx, _ := logGammaImp(x)
		lgy, _ := logGammaImp(y)

		return math.Exp(lgx - lgy)
	}

	return gammaDeltaRatioImp(x, y-x)
}
