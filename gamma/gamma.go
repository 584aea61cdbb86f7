package gamma

import (
	"math"

	"github.com/katalvlaran/lvlmath/numkit"
)

const logPi = 1.1447298858494001741434273513530587116472948129153

// Rational fits for log-gamma on (eps, 3), one per sub-range, each in
// the form r·(Y + P(t)/Q(t)) with Y chosen so the fit vanishes at both
// positive roots z = 1 and z = 2. Transcribed verbatim.

// z in [1, 1.5], argument z − 1.
const lgamma0Y = 0.52815341949462890625

var (
	lgamma0P = []float64{
		0.0490622454069039543534,
		-0.0969117530159521214579,
		-0.414983358359495381969,
		-0.406567124211938417342,
		-0.158413586390692192217,
		-0.0240149820648571559892,
		-0.00100346687696279557415,
	}
	lgamma0Q = []float64{
		1.0,
		3.02349829846463038743,
		3.48739585360723852576,
		1.91415588274426679201,
		0.507137738614363510846,
		0.0577039722690451849648,
		0.00195768102601107189171,
	}
)

// z in (1.5, 2), argument 2 − z.
const lgamma1Y = 0.452017307281494140625

var (
	lgamma1P = []float64{
		-0.0292329721830270012337,
		0.144216267757192309184,
		-0.142440390738631274135,
		0.0542809694055053558157,
		-0.00850535976868336437746,
		0.000431171342679297331241,
	}
	lgamma1Q = []float64{
		1.0,
		-1.50169356054485044494,
		0.846973248876495016101,
		-0.220095151814995745555,
		0.025582797155975869989,
		-0.00100666795539143372762,
		-0.827193521891290553639e-6,
	}
)

// z in [2, 3), argument z − 2.
const lgamma2Y = 0.158963680267333984375

var (
	lgamma2P = []float64{
		-0.0180355685678449379109,
		0.025126649619989678683,
		0.0494103151567532234274,
		0.0172491608709613993966,
		-0.000259453563205438108893,
		-0.000541009869215204396339,
		-0.0000324588649825948492091,
	}
	lgamma2Q = []float64{
		1.0,
		1.96202987197795200688,
		1.48019669424231326694,
		0.541391432071720958364,
		0.0988504251128010129477,
		0.0082130967464889339326,
		0.000224936291922115757597,
		-0.223352763208617092964e-6,
	}
)

// Gamma returns Γ(z). Non-positive integers are poles and yield NaN;
// results beyond the float64 range saturate to ±Inf with the sign the
// function carries on approach.
func Gamma(z float64) float64 {
	if math.IsNaN(z) {
		return z
	}

	return gammaImp(z)
}

func gammaImp(z float64) float64 {
	if math.Floor(z) == z {
		if z <= 0 {
			// Poles at the non-positive integers.
			return math.NaN()
		}
		if z < MaxFactorial+2 {
			return factorials[int(z)-1]
		}

		return math.Inf(1)
	}

	if z < -20 {
		// Reflection: Γ(z) = −π / (z·sin(πz)·Γ(−z)).
		r := gammaImp(-z) * sinpx(z)
		if math.Abs(r) < 1 && math.MaxFloat64*math.Abs(r) < math.Pi {
			if r < 0 {
				return math.Inf(1)
			}

			return math.Inf(-1)
		}

		return -math.Pi / r
	}

	if z > 20 {
		result := lanczosSum(z)
		zgh := z + lanczosG - 0.5
		lzgh := math.Log(zgh)
		if z*lzgh > numkit.LogMaxValue {
			if lzgh*z/2 > numkit.LogMaxValue {
				return math.Inf(1)
			}
			// Split the power in two so the intermediate stays finite.
			hp := math.Pow(zgh, z/2-0.25)
			result *= hp / math.Exp(zgh)
			if math.MaxFloat64/hp < result {
				return math.Inf(1)
			}

			return result * hp
		}

		return result * math.Pow(zgh, z-0.5) / math.Exp(zgh)
	}

	// |z| <= 20, non-integer: shift by the recurrence into the range of
	// the small-z rational fits and reconstruct from the product.
	if z >= 1 {
		prod := 1.0
		for z > 2.5 {
			z--
			prod *= z
		}

		return prod * (1 + Gamma1pm1(z-1))
	}

	prod := z
	for z < -0.5 {
		z++
		prod *= z
	}

	// Γ(z) = Γ(z+n+1) / (z(z+1)…(z+n)).
	return (1 + Gamma1pm1(z)) / prod
}

// LogGamma returns log|Γ(z)|. Non-positive integers yield +Inf, since
// log|Γ| diverges there from both sides. Use LogGammaSign to recover
// the sign of Γ itself for negative arguments.
func LogGamma(z float64) float64 {
	result, _ := LogGammaSign(z)

	return result
}

// LogGammaSign returns log|Γ(z)| together with the sign of Γ(z)
// (+1 or −1; 0 when z is NaN).
func LogGammaSign(z float64) (float64, int) {
	if math.IsNaN(z) {
		return z, 0
	}

	return logGammaImp(z)
}

func logGammaImp(z float64) (float64, int) {
	var result float64
	sresult := 1

	switch {
	case z <= -numkit.RootEpsilon:
		if math.Floor(z) == z {
			return math.Inf(1), 1
		}
		// Reflection: log|Γ(z)| = log π − log|z·sin(πz)| − log Γ(−z).
		t := sinpx(z)
		z = -z
		if t < 0 {
			t = -t
		} else {
			sresult = -sresult
		}
		lg, _ := logGammaImp(z)
		result = numkit.SumPrecise(logPi, -lg, -math.Log(t))
	case z < numkit.RootEpsilon:
		if z == 0 {
			return math.Inf(1), 1
		}
		if 4*math.Abs(z) < numkit.MachEps {
			result = -math.Log(math.Abs(z))
		} else {
			result = math.Log(math.Abs(gammaImp(z)))
		}
		if z < 0 {
			sresult = -1
		}
	case z < 15:
		result = lgammaSmall(z, z-1, z-2)
	case z < 100:
		// Γ(z) stays comfortably inside the float64 range here, so the
		// direct log costs nothing.
		result = math.Log(gammaImp(z))
	default:
		zgh := z + lanczosG - 0.5
		result = (z - 0.5) * (math.Log(zgh) - 1)
		result += math.Log(LanczosSumExpGScaled(z))
	}

	return result, sresult
}

// Gamma1pm1 returns Γ(1+dz) − 1 without the cancellation the direct
// subtraction suffers for |dz| near zero.
func Gamma1pm1(dz float64) float64 {
	if math.IsNaN(dz) {
		return dz
	}

	if dz < 0 {
		if dz < -0.5 {
			// Far enough from zero that direct subtraction is exact.
			return gammaImp(1+dz) - 1
		}

		// Γ(1+dz) = Γ(2+dz)/(1+dz).
		return math.Expm1(-math.Log1p(dz) + lgammaSmall(dz+2, dz+1, dz))
	}

	if dz < 2 {
		return math.Expm1(lgammaSmall(dz+1, dz, dz-1))
	}

	return gammaImp(1+dz) - 1
}

// lgammaSmall evaluates log Γ(z) for z in (eps, 15). The callers pass
// zm1 = z−1 and zm2 = z−2 separately so that values computed without
// rounding (as in Gamma1pm1) keep their full accuracy near the roots.
func lgammaSmall(z, zm1, zm2 float64) float64 {
	if z < numkit.MachEps {
		return -math.Log(z)
	}
	if zm1 == 0 || zm2 == 0 {
		return 0
	}

	var result float64
	if z > 2 {
		if z >= 3 {
			for z >= 3 {
				z--
				result += math.Log(z)
			}
			zm2 = z - 2
		}
		// log Γ(z) = (z−2)(z+1)(Y + R(z−2)) on [2, 3).
		r := zm2 * (z + 1)
		rat := numkit.EvaluateRational(lgamma2P, lgamma2Q, zm2)

		return result + r*lgamma2Y + r*rat
	}

	if z < 1 {
		// Shift up: log Γ(z) = log Γ(z+1) − log z.
		result += -math.Log(z)
		zm2 = zm1
		zm1 = z
		z++
	}

	if z <= 1.5 {
		// log Γ(z) = (z−1)(z−2)(Y + R(z−1)).
		r := zm1 * zm2
		rat := numkit.EvaluateRational(lgamma0P, lgamma0Q, zm1)
		result += r*lgamma0Y + r*rat
	} else {
		// log Γ(z) = −(2−z)(z−1)(Y + R(2−z)).
		mzm2 := -zm2
		r := mzm2 * zm1
		rat := numkit.EvaluateRational(lgamma1P, lgamma1Q, mzm2)
		result += -r*lgamma1Y - r*rat
	}

	return result
}

// sinpx computes z·sin(πz) with the argument reduced to [0, 0.5], so
// the sine never sees a large cancelling argument.
func sinpx(z float64) float64 {
	sign := 1.0
	if z < 0 {
		z = -z
	}
	fl := math.Floor(z)
	var dist float64
	if math.Mod(fl, 2) == 1 {
		fl++
		dist = fl - z
		sign = -sign
	} else {
		dist = z - fl
	}
	if dist > 0.5 {
		dist = 1 - dist
	}

	return sign * z * math.Sin(dist*math.Pi)
}
