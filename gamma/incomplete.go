package gamma

import (
	"math"

	"github.com/katalvlaran/lvlmath/erf"
	"github.com/katalvlaran/lvlmath/numkit"
)

// Evaluation methods of the incomplete gamma selector. Each constant
// names the branch gammaIncompleteImp dispatches to; tests assert the
// selector's routing through these.
const (
	igammaFiniteSum     = iota // integer a, finite sum for Q
	igammaFiniteHalfSum        // half-integer a, erfc plus finite sum
	igammaLowerSeries          // series for P
	igammaSmallUpper           // dedicated small-a small-x form for Q
	igammaUpperFraction        // continued fraction for Q
	igammaTemme                // uniform asymptotic expansion
	igammaTinyX                // two-term expansion for tiny x
	igammaLargeX               // asymptotic series for large x
)

// GammaP returns the lower regularised incomplete gamma function
// P(a, x) = γ(a, x)/Γ(a) for a > 0, x >= 0. Invalid arguments yield
// NaN; a failed series or continued fraction yields a numkit sentinel
// error. An optional trailing Policy overrides tolerance and budget.
func GammaP(a, x float64, pol ...numkit.Policy) (float64, error) {
	result, _, err := gammaIncompleteImp(a, x, true, false, numkit.From(pol))

	return result, err
}

// GammaQ returns the upper regularised incomplete gamma function
// Q(a, x) = Γ(a, x)/Γ(a) = 1 − P(a, x).
func GammaQ(a, x float64, pol ...numkit.Policy) (float64, error) {
	result, _, err := gammaIncompleteImp(a, x, true, true, numkit.From(pol))

	return result, err
}

// IncompleteLower returns the non-normalised lower incomplete gamma
// function γ(a, x). Results beyond the float64 range saturate to +Inf.
func IncompleteLower(a, x float64, pol ...numkit.Policy) (float64, error) {
	result, _, err := gammaIncompleteImp(a, x, false, false, numkit.From(pol))

	return result, err
}

// IncompleteUpper returns the non-normalised upper incomplete gamma
// function Γ(a, x).
func IncompleteUpper(a, x float64, pol ...numkit.Policy) (float64, error) {
	result, _, err := gammaIncompleteImp(a, x, false, true, numkit.From(pol))

	return result, err
}

// gammaIncompleteImp is the shared branch selector behind all four
// incomplete gamma functions. It reports which method it picked so the
// white-box tests can pin the routing. The invert flag may be toggled
// during selection: every branch computes whichever of P, Q is the
// smaller (better conditioned) and complements at the end if needed.
func gammaIncompleteImp(a, x float64, normalised, invert bool, pol numkit.Policy) (float64, int, error) {
	if math.IsNaN(a) || math.IsNaN(x) || a <= 0 || x < 0 {
		return math.NaN(), -1, nil
	}

	if a >= MaxFactorial+1 && !normalised {
		result, err := incompleteHugeA(a, x, invert, pol)

		return result, -1, err
	}

	isInt := false
	isHalfInt := false
	if a < 30 && a <= x+1 && x < numkit.LogMaxValue {
		fa := math.Floor(a)
		isInt = fa == a
		isHalfInt = !isInt && math.Abs(fa-a) == 0.5
	}

	var method int
	switch {
	case isInt && x > 0.6:
		invert = !invert
		method = igammaFiniteSum
	case isHalfInt && x > 0.2:
		invert = !invert
		method = igammaFiniteHalfSum
	case x < numkit.RootEpsilon && a > 1:
		method = igammaTinyX
	case x > 1000 && a < x*0.75:
		invert = !invert
		method = igammaLargeX
	case x < 0.5:
		if -0.4/math.Log(x) < a {
			method = igammaLowerSeries
		} else {
			method = igammaSmallUpper
		}
	case x < 1.1:
		if x*0.75 < a {
			method = igammaLowerSeries
		} else {
			method = igammaSmallUpper
		}
	default:
		useTemme := false
		if normalised && a > 20 {
			sigma := math.Abs((x - a) / a)
			if a > 200 {
				useTemme = 20/a > sigma*sigma
			} else {
				useTemme = sigma < 0.4
			}
		}
		switch {
		case useTemme:
			method = igammaTemme
		case x-1/(3*x) < a:
			method = igammaLowerSeries
		default:
			invert = !invert
			method = igammaUpperFraction
		}
	}

	var result float64
	var err error
	switch method {
	case igammaFiniteSum:
		result = finiteGammaQ(a, x)
		if !normalised {
			result *= gammaImp(a)
		}
	case igammaFiniteHalfSum:
		result = finiteHalfGammaQ(a, x)
		if !normalised {
			result *= gammaImp(a)
		}
	case igammaLowerSeries:
		if normalised {
			result = RegularizedPrefix(a, x, pol)
		} else {
			result = FullPrefix(a, x)
		}
		if result != 0 {
			// When inverting, seed the series with −total/prefix so the
			// complement falls out of one summation without cancellation.
			initValue := 0.0
			optimisedInvert := false
			if invert {
				if normalised {
					initValue = 1
				} else {
					initValue = gammaImp(a)
				}
				if normalised || result >= 1 || math.MaxFloat64*result > initValue {
					initValue /= result
					if normalised || a < 1 || math.MaxFloat64/a*result > initValue {
						initValue *= -a
						optimisedInvert = true
					} else {
						initValue = 0
					}
				} else {
					initValue = 0
				}
			}
			var sum float64
			sum, err = lowerGammaSeries(a, x, initValue, pol)
			result *= sum / a
			if optimisedInvert {
				invert = false
				result = -result
			}
		}
	case igammaSmallUpper:
		invert = !invert
		var g float64
		result, g, err = tgammaSmallUpperPart(a, x, invert, pol)
		invert = false
		if normalised {
			result /= g
		}
	case igammaUpperFraction:
		if normalised {
			result = RegularizedPrefix(a, x, pol)
		} else {
			result = FullPrefix(a, x)
		}
		if result != 0 {
			var frac float64
			frac, err = upperGammaFraction(a, x, pol)
			result *= frac
		}
	case igammaTemme:
		result, err = igammaTemmeLarge(a, x, pol)
		if x >= a {
			invert = !invert
		}
	case igammaTinyX:
		if normalised {
			result = math.Pow(x, a) / gammaImp(a+1)
		} else {
			result = math.Pow(x, a) / a
		}
		result *= 1 - a*x/(a+1)
	case igammaLargeX:
		if normalised {
			result = RegularizedPrefix(a, x, pol)
		} else {
			result = FullPrefix(a, x)
		}
		result /= x
		if result != 0 {
			var sum float64
			sum, err = incompleteGammaLargeXSeries(a, x, pol)
			result *= sum
		}
	}
	if err != nil {
		return result, method, err
	}

	if normalised && result > 1 {
		result = 1
	}
	if invert {
		gam := 1.0
		if !normalised {
			gam = gammaImp(a)
		}
		result = gam - result
	}

	return result, method, nil
}

// incompleteHugeA handles the non-normalised functions once Γ(a) is no
// longer representable: everything happens in log space and only the
// final result is exponentiated.
func incompleteHugeA(a, x float64, invert bool, pol numkit.Policy) (float64, error) {
	var result float64

	switch {
	case invert && a*4 < x:
		// Γ(a,x) = x^a·e^(−x)·CF.
		frac, err := upperGammaFraction(a, x, pol)
		if err != nil {
			return 0, err
		}
		result = a*math.Log(x) - x + math.Log(frac)
	case !invert && a > x*4:
		// x well below a: the series terms shrink from the start, so
		// the direct log-space sum is safe.
		sum, err := lowerGammaSeries(a, x, 0, pol)
		if err != nil {
			return 0, err
		}
		result = a*math.Log(x) - x + math.Log(sum/a)
	default:
		norm, _, err := gammaIncompleteImp(a, x, true, invert, pol)
		if err != nil {
			return 0, err
		}
		switch {
		case norm == 0 && invert:
			// Q underflowed, which only happens when x >> a; the
			// continued fraction is safe there.
			frac, err := upperGammaFraction(a, x, pol)
			if err != nil {
				return 0, err
			}
			result = a*math.Log(x) - x + math.Log(frac)
		case norm == 0:
			// P underflowed, so x << a and the series is safe.
			sum, err := lowerGammaSeries(a, x, 0, pol)
			if err != nil {
				return 0, err
			}
			result = a*math.Log(x) - x + math.Log(sum/a)
		default:
			lg, _ := logGammaImp(a)
			result = math.Log(norm) + lg
		}
	}

	if result > numkit.LogMaxValue {
		return math.Inf(1), nil
	}

	return math.Exp(result), nil
}

// finiteGammaQ sums Q(a,x) = e^(−x)·Σ x^n/n! for integer a in [1, 30).
func finiteGammaQ(a, x float64) float64 {
	sum := math.Exp(-x)
	if sum != 0 {
		term := sum
		for n := 1.0; n < a; n++ {
			term /= n
			term *= x
			sum += term
		}
	}

	return sum
}

// finiteHalfGammaQ sums Q(a,x) for half-integer a in (1, 30): an erfc
// leading term plus a finite series.
func finiteHalfGammaQ(a, x float64) float64 {
	e := erf.Erfc(math.Sqrt(x))
	if e != 0 && a > 1 {
		term := math.Exp(-x) / math.Sqrt(math.Pi*x)
		term *= x
		term /= 0.5
		sum := term
		for n := 2.0; n < a; n++ {
			term /= n - 0.5
			term *= x
			sum += term
		}
		e += sum
	}

	return e
}

// lowerGammaSeries sums Σ x^n / ((a+1)(a+2)…(a+n)); P(a,x) is then
// prefix·sum/a.
func lowerGammaSeries(a, x, initValue float64, pol numkit.Policy) (float64, error) {
	term := 1.0
	next := func() float64 {
		r := term
		a++
		term *= x / a

		return r
	}

	return numkit.SumSeries(next, initValue, pol)
}

// upperGammaFraction evaluates the Legendre continued fraction for
// Q(a,x)/prefix with partial terms aₖ = k(a−k), bₖ = x − a + 1 + 2k.
func upperGammaFraction(a, x float64, pol numkit.Policy) (float64, error) {
	b := x - a + 1
	k := 0.0
	first := true
	gen := func() numkit.CFTerm {
		if first {
			first = false

			return numkit.CFTerm{B: b}
		}
		k++
		b += 2

		return numkit.CFTerm{A: k * (a - k), B: b}
	}

	h, err := numkit.ContinuedFractionB(gen, pol)
	if err != nil {
		return 0, err
	}

	return 1 / h, nil
}

// tgammaSmallUpperPart computes Γ(a,x) for small a and x via
// Γ(a,x) = Γ(a) − x^a/a − x^a·Σ (−x)^n/(n!(a+n)), with the leading
// subtraction rearranged through Gamma1pm1 and Powm1 so no term
// cancels. Also reports g = Γ(a); when invert is set the sum is seeded
// so the complement γ(a,x) falls out directly.
func tgammaSmallUpperPart(a, x float64, invert bool, pol numkit.Policy) (float64, float64, error) {
	result := Gamma1pm1(a)
	g := (result + 1) / a

	p := numkit.Powm1(x, a)
	result -= p
	result /= a
	p++

	initValue := 0.0
	if invert {
		initValue = g
	}

	n := 1.0
	apn := a + 1
	term := -x
	next := func() float64 {
		r := term / apn
		n++
		term *= -x / n
		apn++

		return r
	}

	sum, err := numkit.SumSeries(next, (initValue-result)/p, pol)
	result = -p * sum
	if invert {
		result = -result
	}

	return result, g, err
}

// incompleteGammaLargeXSeries sums the asymptotic series
// Σ (a−1)(a−2)…(a−n)/x^n; Q(a,x) is then prefix·sum/x. Only valid
// well inside the a < 0.75·x gate, where the terms shrink fast.
func incompleteGammaLargeXSeries(a, x float64, pol numkit.Policy) (float64, error) {
	term := 1.0
	poch := a - 1
	next := func() float64 {
		r := term
		term *= poch / x
		poch--

		return r
	}

	return numkit.SumSeries(next, 0, pol)
}

// RegularizedPrefix computes x^a·e^(−x)/Γ(a), the power prefix shared
// by the regularised incomplete gamma and beta engines. The case split
// exists purely to dodge premature overflow and underflow: half and
// quarter root tricks keep intermediates representable whenever the
// final value is. An optional trailing Policy governs the internal
// log1pmx expansion on the near-diagonal branch.
func RegularizedPrefix(a, z float64, pol ...numkit.Policy) float64 {
	if z >= math.MaxFloat64 {
		return 0
	}

	agh := a + lanczosG - 0.5
	d := ((z - a) - lanczosG + 0.5) / agh
	var prefix float64

	switch {
	case a < 1:
		// Γ(a) is modest here; only e^(−z) can misbehave.
		if z > -numkit.LogMinValue {
			lg, _ := logGammaImp(a)
			prefix = math.Exp(a*math.Log(z) - z - lg)
		} else {
			prefix = math.Pow(z, a) * math.Exp(-z) / gammaImp(a)
		}
	case d*d*a <= 100 && a > 150:
		// z near a: expand through log1pmx to kill the cancellation
		// between a·log(z/agh) and a−z.
		lp, _ := numkit.Log1pmx(d, numkit.From(pol))
		prefix = math.Exp(a*lp + z*(0.5-lanczosG)/agh)
	default:
		alz := a * math.Log(z/agh)
		amz := a - z
		minv := math.Min(alz, amz)
		maxv := math.Max(alz, amz)
		switch {
		case minv <= numkit.LogMinValue || maxv >= numkit.LogMaxValue:
			amza := amz / a
			switch {
			case minv/2 > numkit.LogMinValue && maxv/2 < numkit.LogMaxValue:
				sq := math.Pow(z/agh, a/2) * math.Exp(amz/2)
				prefix = sq * sq
			case minv/4 > numkit.LogMinValue && maxv/4 < numkit.LogMaxValue && z > a:
				sq := math.Pow(z/agh, a/4) * math.Exp(amz/4)
				prefix = sq * sq * sq * sq
			case amza > numkit.LogMinValue && amza < numkit.LogMaxValue:
				prefix = math.Pow(z*math.Exp(amza)/agh, a)
			default:
				prefix = math.Exp(alz + amz)
			}
		default:
			prefix = math.Pow(z/agh, a) * math.Exp(amz)
		}
	}

	return prefix * math.Sqrt(agh/math.E) / LanczosSumExpGScaled(a)
}

// FullPrefix computes the non-normalised prefix x^a·e^(−x), again with
// a ladder of rearrangements to stay representable as long as possible.
// Overflows saturate to +Inf.
func FullPrefix(a, z float64) float64 {
	alz := a * math.Log(z)
	var prefix float64

	if z >= 1 {
		switch {
		case alz < numkit.LogMaxValue && -z > numkit.LogMinValue:
			prefix = math.Pow(z, a) * math.Exp(-z)
		case a >= 1:
			prefix = math.Pow(z/math.Exp(z/a), a)
		default:
			prefix = math.Exp(alz - z)
		}
	} else {
		switch {
		case alz > numkit.LogMinValue:
			prefix = math.Pow(z, a) * math.Exp(-z)
		case z/a < numkit.LogMaxValue:
			prefix = math.Pow(z/math.Exp(z/a), a)
		default:
			prefix = math.Exp(alz - z)
		}
	}

	return prefix
}
