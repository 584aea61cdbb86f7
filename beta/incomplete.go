package beta

import (
	"math"

	"github.com/katalvlaran/lvlmath/gamma"
	"github.com/katalvlaran/lvlmath/numkit"
)

// Smallest normalised float64; prefixes below it are treated as a hard
// underflow and short-circuit the series they would have seeded.
const minNormal = 0x1p-1022

// RegularizedBeta returns the regularised incomplete beta function
// I_x(a, b) for x in [0, 1]. a and b must be non-negative and not both
// zero; invalid arguments yield NaN with no error. A failed series or
// continued fraction yields a numkit sentinel error. An optional
// trailing Policy overrides tolerance and iteration budget.
func RegularizedBeta(x, a, b float64, pol ...numkit.Policy) (float64, error) {
	return ibetaImp(a, b, x, false, true, numkit.From(pol))
}

// RegularizedBetaComplement returns 1 − I_x(a, b), computed directly so
// no accuracy is lost when I_x is close to one.
func RegularizedBetaComplement(x, a, b float64, pol ...numkit.Policy) (float64, error) {
	return ibetaImp(a, b, x, true, true, numkit.From(pol))
}

// IncompleteBeta returns the non-normalised incomplete beta function
// B_x(a, b) = I_x(a, b)·B(a, b). Requires a, b > 0.
func IncompleteBeta(x, a, b float64, pol ...numkit.Policy) (float64, error) {
	return ibetaImp(a, b, x, false, false, numkit.From(pol))
}

// IncompleteBetaComplement returns B(a, b) − B_x(a, b).
func IncompleteBetaComplement(x, a, b float64, pol ...numkit.Policy) (float64, error) {
	return ibetaImp(a, b, x, true, false, numkit.From(pol))
}

// ibetaImp is the shared branch selector behind the four incomplete
// beta functions. Arguments are swapped (a ↔ b, x ↔ 1−x) during
// selection so each branch only ever sees its well-conditioned side;
// the invert flag tracks whether the complement is owed at the end.
func ibetaImp(a, b, x float64, invert, normalised bool, pol numkit.Policy) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(x) {
		return math.NaN(), nil
	}
	if x < 0 || x > 1 {
		return math.NaN(), nil
	}
	y := 1 - x

	if normalised {
		if a < 0 || b < 0 || (a == 0 && b == 0) {
			return math.NaN(), nil
		}
		// Degenerate limits: all the mass sits at one endpoint.
		if a == 0 {
			if invert {
				return 0, nil
			}

			return 1, nil
		}
		if b == 0 {
			if invert {
				return 1, nil
			}

			return 0, nil
		}
	} else if a <= 0 || b <= 0 {
		return math.NaN(), nil
	}

	if x == 0 {
		if invert {
			if normalised {
				return 1, nil
			}

			return betaImp(a, b), nil
		}

		return 0, nil
	}
	if x == 1 {
		if !invert {
			if normalised {
				return 1, nil
			}

			return betaImp(a, b), nil
		}

		return 0, nil
	}

	if normalised && a == 0.5 && b == 0.5 {
		// Arcsine distribution, exact closed form.
		p := math.Asin(math.Sqrt(x))
		if invert {
			p = math.Asin(math.Sqrt(y))
		}

		return p / (math.Pi / 2), nil
	}

	if a == 1 {
		a, b = b, a
		x, y = y, x
		invert = !invert
	}
	if b == 1 {
		if a == 1 {
			if invert {
				return y, nil
			}

			return x, nil
		}
		// I_x(a, 1) = x^a; keep full accuracy whichever endpoint x
		// is nearest.
		var p float64
		switch {
		case invert && y < 0.5:
			p = -math.Expm1(a * math.Log1p(-y))
		case invert:
			p = -numkit.Powm1(x, a)
		case y < 0.5:
			p = math.Exp(a * math.Log1p(-y))
		default:
			p = math.Pow(x, a)
		}
		if !normalised {
			p /= a
		}

		return p, nil
	}

	// Series evaluation covering both orientations of the invert flag:
	// when inverting, the series is seeded with −total so complement and
	// sum collapse into a single summation without cancellation.
	series := func() (float64, error) {
		if !invert {
			return ibetaSeries(a, b, x, 0, normalised, pol)
		}
		s0 := -1.0
		if !normalised {
			s0 = -betaImp(a, b)
		}
		invert = false
		f, err := ibetaSeries(a, b, x, s0, normalised, pol)

		return -f, err
	}

	// Twenty forward steps on a, then the small-b large-a series on the
	// shifted parameters. Same seeding trick for the inverted case.
	stepSeries := func() (float64, error) {
		prefix := 1.0
		if !normalised {
			prefix = risingFactorialRatio(a+b, a, 20)
		}
		fract := ibetaAStep(a, b, x, y, 20, normalised)
		if !invert {
			return betaSmallBLargeASeries(a+20, b, x, y, fract, prefix, normalised, pol)
		}
		if normalised {
			fract--
		} else {
			fract -= betaImp(a, b)
		}
		invert = false
		f, err := betaSmallBLargeASeries(a+20, b, x, y, fract, prefix, normalised, pol)

		return -f, err
	}

	var fract float64
	var err error
	if math.Min(a, b) <= 1 {
		if x > 0.5 {
			a, b = b, a
			x, y = y, x
			invert = !invert
		}
		if math.Max(a, b) <= 1 {
			// Both parameters at most one.
			if a >= math.Min(0.2, b) || math.Pow(x, a) <= 0.9 {
				fract, err = series()
			} else {
				a, b = b, a
				x, y = y, x
				invert = !invert
				if y >= 0.3 {
					fract, err = series()
				} else {
					fract, err = stepSeries()
				}
			}
		} else {
			// Exactly one parameter at most one.
			if b <= 1 || (x < 0.1 && math.Pow(b*x, a) <= 0.7) {
				fract, err = series()
			} else {
				a, b = b, a
				x, y = y, x
				invert = !invert
				switch {
				case y >= 0.3:
					fract, err = series()
				case a >= 15:
					if !invert {
						fract, err = betaSmallBLargeASeries(a, b, x, y, 0, 1, normalised, pol)
					} else {
						s0 := -1.0
						if !normalised {
							s0 = -betaImp(a, b)
						}
						invert = false
						fract, err = betaSmallBLargeASeries(a, b, x, y, s0, 1, normalised, pol)
						fract = -fract
					}
				default:
					fract, err = stepSeries()
				}
			}
		}
	} else {
		// Both parameters above one: orient so lambda = a − (a+b)x is
		// non-negative, which keeps every downstream expansion stable.
		var lambda float64
		if a < b {
			lambda = a - (a+b)*x
		} else {
			lambda = (a+b)*y - b
		}
		if lambda < 0 {
			a, b = b, a
			x, y = y, x
			invert = !invert
		}

		switch {
		case b >= 40:
			fract, err = ibetaFraction2(a, b, x, y, normalised, pol)
		case math.Floor(a) == a && math.Floor(b) == b && a < 1e15 && y != 1:
			// Integer parameters: I_x relates to a binomial tail, which
			// is a finite sum.
			k := a - 1
			n := b + k
			fract = binomialCcdf(n, k, x, y)
			if !normalised {
				fract *= betaImp(a, b)
			}
		case b*x <= 0.7:
			fract, err = series()
		case a > 15:
			// Step b down to an integer offset so the small-b series
			// applies, then restore with a rising factorial ratio.
			n := int(math.Floor(b))
			if float64(n) == b {
				n--
			}
			bbar := b - float64(n)
			prefix := 1.0
			if !normalised {
				prefix = risingFactorialRatio(a+bbar, bbar, n)
			}
			fract = ibetaAStep(bbar, a, y, x, n, normalised)
			fract, err = betaSmallBLargeASeries(a, bbar, x, y, fract, 1, normalised, pol)
			fract /= prefix
		case normalised:
			n := int(math.Floor(b))
			bbar := b - float64(n)
			if bbar <= 0 {
				n--
				bbar++
			}
			fract = ibetaAStep(bbar, a, y, x, n, normalised)
			fract += ibetaAStep(a, bbar, x, y, 20, normalised)
			if invert {
				fract--
			}
			fract, err = betaSmallBLargeASeries(a+20, bbar, x, y, fract, 1, normalised, pol)
			if invert {
				fract = -fract
				invert = false
			}
		default:
			fract, err = ibetaFraction2(a, b, x, y, normalised, pol)
		}
	}
	if err != nil {
		return fract, err
	}

	if invert {
		total := 1.0
		if !normalised {
			total = betaImp(a, b)
		}
		fract = total - fract
	}

	return fract, nil
}

// ibetaSeries sums x^a·(1−b)ₙ·xⁿ/(n!·(a+n)) with its prefix folded into
// the leading term. For the normalised case the prefix is
// x^a·Γ(a+b)/(Γ(a)·Γ(a+1)·B(a,b)) assembled from the Lanczos sums so no
// individual gamma is formed; when it underflows outright the series
// contributes nothing and s0 is returned as-is.
func ibetaSeries(a, b, x, s0 float64, normalised bool, pol numkit.Policy) (float64, error) {
	var result float64
	if normalised {
		c := a + b
		agh := a + gamma.LanczosG - 0.5
		bgh := b + gamma.LanczosG - 0.5
		cgh := c + gamma.LanczosG - 0.5
		result = gamma.LanczosSumExpGScaled(c) /
			(gamma.LanczosSumExpGScaled(a) * gamma.LanczosSumExpGScaled(b))

		l1 := (b - 0.5) * math.Log(cgh/bgh)
		l2 := a * math.Log(x*cgh/agh)
		if l1 > numkit.LogMinValue && l1 < numkit.LogMaxValue &&
			l2 > numkit.LogMinValue && l2 < numkit.LogMaxValue {
			if a*b < bgh*10 {
				result *= math.Exp((b - 0.5) * math.Log1p(a/bgh))
			} else {
				result *= math.Pow(cgh/bgh, b-0.5)
			}
			result *= math.Pow(x*cgh/agh, a)
			result *= math.Sqrt(agh / math.E)
		} else {
			// One factor alone is out of range; regroup in log space.
			lb := math.Log(result) + l1 + l2 + 0.5*(math.Log(agh)-1)
			result = math.Exp(lb)
		}
	} else {
		result = math.Pow(x, a)
	}
	if result < minNormal {
		return s0, nil
	}

	apn := a
	poch := 1 - b
	n := 1.0
	term := result
	next := func() float64 {
		r := term / apn
		apn++
		term *= poch * x / n
		n++
		poch++

		return r
	}

	return numkit.SumSeries(next, s0, pol)
}

// ibetaPowerTerms evaluates x^a·y^b/B(a,b) (or the bare powers in the
// non-normalised case). The branch ladder exists because either power
// alone may overflow or underflow while the product stays comfortably
// representable, and because bases within rounding of 1 raised to huge
// exponents lose all their accuracy unless routed through log1p.
func ibetaPowerTerms(a, b, x, y float64, normalised bool) float64 {
	if !normalised {
		return math.Pow(x, a) * math.Pow(y, b)
	}

	c := a + b
	agh := a + gamma.LanczosG - 0.5
	bgh := b + gamma.LanczosG - 0.5
	cgh := c + gamma.LanczosG - 0.5
	result := gamma.LanczosSumExpGScaled(c) /
		(gamma.LanczosSumExpGScaled(a) * gamma.LanczosSumExpGScaled(b))

	// l1 and l2 are the power bases minus one.
	l1 := (x*b - y*agh) / agh
	l2 := (y*a - x*bgh) / bgh
	if math.Min(math.Abs(l1), math.Abs(l2)) < 0.2 {
		switch {
		case l1*l2 > 0 || math.Min(a, b) < 1:
			// Either both powers head the same way, so any overflow is
			// genuine, or one exponent is below one and its power is
			// already near 1.
			if math.Abs(l1) < 0.1 {
				result *= math.Exp(a * math.Log1p(l1))
			} else {
				result *= math.Pow(x*cgh/agh, a)
			}
			if math.Abs(l2) < 0.1 {
				result *= math.Exp(b * math.Log1p(l2))
			} else {
				result *= math.Pow(y*cgh/bgh, b)
			}
		case math.Max(math.Abs(l1), math.Abs(l2)) < 0.5:
			// Both bases near 1 with the powers pulling in opposite
			// directions: fold one exponent into the other so the
			// combined base is formed before any power is taken.
			smallA := a < b
			ratio := b / a
			if (smallA && ratio*l2 < 1) || (!smallA && l1*ratio < 1) {
				l3 := math.Expm1(ratio * math.Log1p(l2))
				l3 = l1 + l3 + l3*l1
				result *= math.Exp(a * math.Log1p(l3))
			} else {
				l3 := math.Expm1(math.Log1p(l1) / ratio)
				l3 = l2 + l3 + l3*l2
				result *= math.Exp(b * math.Log1p(l3))
			}
		case math.Abs(l1) < math.Abs(l2):
			// Only the first base is near 1.
			l := a*math.Log1p(l1) + b*math.Log(y*cgh/bgh)
			if l <= numkit.LogMinValue || l >= numkit.LogMaxValue {
				l += math.Log(result)
				result = math.Exp(l)
			} else {
				result *= math.Exp(l)
			}
		default:
			l := b*math.Log1p(l2) + a*math.Log(x*cgh/agh)
			if l <= numkit.LogMinValue || l >= numkit.LogMaxValue {
				l += math.Log(result)
				result = math.Exp(l)
			} else {
				result *= math.Exp(l)
			}
		}
	} else {
		b1 := x * cgh / agh
		b2 := y * cgh / bgh
		l1 = a * math.Log(b1)
		l2 = b * math.Log(b2)
		if l1 >= numkit.LogMaxValue || l1 <= numkit.LogMinValue ||
			l2 >= numkit.LogMaxValue || l2 <= numkit.LogMinValue {
			// One power is out of range on its own; move part of the
			// larger exponent onto the other base.
			if a < b {
				p1 := math.Pow(b2, b/a)
				l3 := numkit.LogMaxValue
				if p1 != 0 {
					l3 = a * (math.Log(b1) + math.Log(p1))
				}
				if l3 < numkit.LogMaxValue && l3 > numkit.LogMinValue {
					result *= math.Pow(p1*b1, a)
				} else {
					result = math.Exp(l1 + l2 + math.Log(result))
				}
			} else {
				p1 := math.Pow(b1, a/b)
				l3 := numkit.LogMaxValue
				if p1 != 0 {
					l3 = b * (math.Log(p1) + math.Log(b2))
				}
				if l3 < numkit.LogMaxValue && l3 > numkit.LogMinValue {
					result *= math.Pow(p1*b2, b)
				} else {
					result = math.Exp(l1 + l2 + math.Log(result))
				}
			}
		} else {
			result *= math.Pow(b1, a) * math.Pow(b2, b)
		}
	}

	result *= math.Sqrt(bgh / math.E)
	result *= math.Sqrt(agh / cgh)

	return result
}

// ibetaAStep applies k forward recurrences on the first parameter:
// I_x(a, b) = I_x(a+k, b) + Σ of k power terms, returned here as the
// finite sum. The recurrence terms share a common prefix so the sum
// needs only ratio updates.
func ibetaAStep(a, b, x, y float64, k int, normalised bool) float64 {
	prefix := ibetaPowerTerms(a, b, x, y, normalised) / a
	if prefix == 0 {
		return 0
	}

	sum := 1.0
	term := 1.0
	for i := 0; i < k-1; i++ {
		term *= (a + b + float64(i)) * x / (a + float64(i) + 1)
		sum += term
	}

	return prefix * sum
}

// risingFactorialRatio returns (a)ₖ/(b)ₖ, the ratio of two rising
// factorials, as a plain product. Only used for modest k where neither
// factorial alone would be representable.
func risingFactorialRatio(a, b float64, k int) float64 {
	result := 1.0
	for i := 0; i < k; i++ {
		result *= (a + float64(i)) / (b + float64(i))
	}

	return result
}

// pnSize caps the recurrence table of betaSmallBLargeASeries. The
// expansion converges well inside this many terms for every region the
// selector routes here; if it has not, the truncated tail is already
// below working precision.
const pnSize = 30

// betaSmallBLargeASeries evaluates I_x(a, b) for large a and small b
// through an incomplete gamma expansion: the leading term is
// Q(b, u)·prefix with u = −(a + (b−1)/2)·log(x), and the correction
// terms pair recursively computed coefficients pₙ with iterated
// integrals jₙ. s0 seeds the sum and mult scales the prefix.
func betaSmallBLargeASeries(a, b, x, y, s0, mult float64, normalised bool, pol numkit.Policy) (float64, error) {
	bm1 := b - 1
	t := a + bm1/2
	var lx float64
	if y < 0.35 {
		lx = math.Log1p(-y)
	} else {
		lx = math.Log(x)
	}
	u := -t * lx

	h := gamma.RegularizedPrefix(b, u, pol)
	if h <= minNormal {
		return s0, nil
	}
	var prefix float64
	if normalised {
		prefix = h / gamma.GammaDeltaRatio(a, b) / math.Pow(t, b)
	} else {
		prefix = gamma.FullPrefix(b, u) / math.Pow(t, b)
	}
	prefix *= mult

	q, err := gamma.GammaQ(b, u, pol)
	if err != nil {
		return s0, err
	}
	j := q / h

	var p [pnSize]float64
	p[0] = 1
	sum := s0 + prefix*j

	tnp1 := 1
	lx2 := lx / 2
	lx2 *= lx2
	lxp := 1.0
	t4 := 4 * t * t
	b2n := b

	for n := 1; n < pnSize; n++ {
		tnp1 += 2
		p[n] = 0
		tmp1 := 3
		for m := 1; m < n; m++ {
			mbn := float64(m)*b - float64(n)
			p[n] += mbn * p[n-m] / gamma.Factorial(tmp1)
			tmp1 += 2
		}
		p[n] /= float64(n)
		p[n] += bm1 / gamma.Factorial(tnp1)

		j = (b2n*(b2n+1)*j + (u+b2n+1)*lxp) / t4
		lxp *= lx2
		b2n += 2

		r := prefix * p[n] * j
		sum += r
		if math.Abs(r) < math.Abs(numkit.MachEps*sum) {
			break
		}
	}

	return sum, nil
}

// binomialCcdf sums the binomial tail Σ C(n,i)·xⁱ·y^(n−i) for i from
// k+1 to n, which equals I_x(k+1, n−k) for integer parameters. When the
// first power underflows, the walk restarts from the distribution mode
// in log space and spreads outwards in both directions.
func binomialCcdf(n, k, x, y float64) float64 {
	result := math.Pow(x, n)
	if result > minNormal {
		term := result
		for i := n - 1; i > k; i-- {
			term *= ((i + 1) * y) / ((n - i) * x)
			result += term
		}

		return result
	}

	start := math.Floor(n * x)
	if start <= k+1 {
		start = math.Floor(k + 2)
	}
	startPow := math.Exp(logBinomialTerm(n, start, x, y))
	if startPow == 0 {
		return 0
	}
	result = startPow
	term := startPow
	for i := start - 1; i > k; i-- {
		term *= ((i + 1) * y) / ((n - i) * x)
		result += term
	}
	term = startPow
	for i := start + 1; i <= n; i++ {
		term *= (n - i + 1) * x / (i * y)
		result += term
	}

	return result
}

// logBinomialTerm returns log(C(n,i)·xⁱ·y^(n−i)) through log-gamma.
func logBinomialTerm(n, i, x, y float64) float64 {
	lc := gamma.LogGamma(n+1) - gamma.LogGamma(i+1) - gamma.LogGamma(n-i+1)

	return lc + i*math.Log(x) + (n-i)*math.Log(y)
}

// ibetaFraction2 evaluates I_x(a, b) as prefix/CF with the
// even-contracted continued fraction, the workhorse for the central
// region where both parameters exceed one and no series converges
// quickly. When the power prefix underflows in its intermediates the
// classic odd/even fraction is re-run fully in log space instead.
func ibetaFraction2(a, b, x, y float64, normalised bool, pol numkit.Policy) (float64, error) {
	result := ibetaPowerTerms(a, b, x, y, normalised)
	if result == 0 {
		return ibetaFractionLog(a, b, x, y, normalised, pol)
	}

	m := 0.0
	gen := func() numkit.CFTerm {
		denom := a + 2*m - 1
		aN := (a + m - 1) * (a + b + m - 1) * m * (b - m) * x * x / (denom * denom)
		bN := m + m*(b-m)*x/denom + (a+m)*(a*y-b*x+1+m*(2-x))/(a+2*m+1)
		m++

		return numkit.CFTerm{A: aN, B: bN}
	}

	fract, err := numkit.ContinuedFractionB(gen, pol)
	if err != nil {
		return 0, err
	}

	return result / fract, nil
}

// ibetaFractionLog is the log-space fallback: the classic continued
// fraction with the prefix assembled as
// exp(a·log x + b·log y − log B(a,b))/a, which survives arguments whose
// direct power terms underflow to zero mid-computation.
func ibetaFractionLog(a, b, x, y float64, normalised bool, pol numkit.Policy) (float64, error) {
	lp := a*math.Log(x) + b*math.Log(y)
	if normalised {
		lp -= LogBeta(a, b)
	}

	n := 0
	gen := func() numkit.CFTerm {
		if n == 0 {
			n++

			return numkit.CFTerm{B: 1}
		}
		var d float64
		if n%2 == 0 {
			m := float64(n / 2)
			d = m * (b - m) * x / ((a + 2*m - 1) * (a + 2*m))
		} else {
			m := float64((n - 1) / 2)
			d = -(a + m) * (a + b + m) * x / ((a + 2*m) * (a + 2*m + 1))
		}
		n++

		return numkit.CFTerm{A: d, B: 1}
	}

	cf, err := numkit.ContinuedFractionB(gen, pol)
	if err != nil {
		return 0, err
	}

	return math.Exp(lp) / a / cf, nil
}
