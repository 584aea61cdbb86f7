package numkit

// EvaluatePolynomial evaluates c[0] + c[1]·x + c[2]·x² + … by Horner's
// method. Coefficients are in ascending order of power, matching the
// layout of the minimax tables used throughout lvlmath. An empty
// coefficient slice evaluates to zero.
func EvaluatePolynomial(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}

	result := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		result = result*x + c[i]
	}

	return result
}

// EvaluateRational evaluates the ratio of two polynomials of equal
// degree sharing the same argument. Both coefficient slices are in
// ascending order. For |x| > 1 the ratio is rewritten in powers of 1/x
// so that neither polynomial overflows on its own even when the ratio
// itself is perfectly representable.
func EvaluateRational(num, den []float64, x float64) float64 {
	if x <= 1 && x >= -1 {
		return EvaluatePolynomial(num, x) / EvaluatePolynomial(den, x)
	}

	// Reversed Horner gives num(x)/x^degN and den(x)/x^degD; the x^(degN−degD)
	// factor restores the ratio when the degrees differ.
	z := 1 / x
	n := num[0]
	for i := 1; i < len(num); i++ {
		n = n*z + num[i]
	}
	d := den[0]
	for i := 1; i < len(den); i++ {
		d = d*z + den[i]
	}
	n /= d
	for i := len(num); i < len(den); i++ {
		n *= z
	}
	for i := len(den); i < len(num); i++ {
		n *= x
	}

	return n
}
