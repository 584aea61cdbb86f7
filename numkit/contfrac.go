package numkit

import "math"

// CFTerm is one coefficient pair (aₙ, bₙ) of a generalized continued
// fraction
//
//	b0 + a1/(b1 + a2/(b2 + a3/(b3 + …)))
//
// produced lazily by a CFGenerator.
type CFTerm struct {
	A, B float64
}

// CFGenerator produces successive continued-fraction terms. Like
// TermFunc it is a stateful closure owned by a single evaluation.
type CFGenerator func() CFTerm

// cfTiny substitutes for an exactly-zero Lentz denominator; small
// enough to be harmless, large enough to avoid division by zero.
const cfTiny = 1e-50

// ContinuedFractionB evaluates b0 + a1/(b1 + a2/(b2 + …)) with the
// modified Lentz algorithm (Thompson & Barnett, 1986). The first
// generated term supplies b0 (its A is ignored); subsequent terms
// supply (aₙ, bₙ).
//
// Fails with ErrDiverged if the running value becomes non-finite,
// ErrZeroDelta if an update factor collapses to zero, and
// ErrMaxIterations if pol.MaxIterations is exhausted.
func ContinuedFractionB(gen CFGenerator, pol Policy) (float64, error) {
	eps := math.Max(pol.Eps, minSeriesEps)

	v := gen()
	h := v.B
	if h == 0 {
		h = cfTiny
	}
	c := h
	d := 0.0

	for n := uint32(0); n < pol.MaxIterations; n++ {
		v = gen()

		d = v.B + v.A*d
		if d == 0 {
			d = cfTiny
		}
		c = v.B + v.A/c
		if c == 0 {
			c = cfTiny
		}
		d = 1 / d

		delta := c * d
		h *= delta

		if math.IsInf(h, 0) || math.IsNaN(h) {
			return h, ErrDiverged
		}
		if delta == 0 {
			return h, ErrZeroDelta
		}
		if math.Abs(delta-1) < eps {
			return h, nil
		}
	}

	return h, ErrMaxIterations
}

// ContinuedFractionA evaluates a1/(b1 + a2/(b2 + …)): the leading b0
// term is absent and the first generated term supplies (a1, b1).
// Callers pick this variant when their generator is indexed from the
// first partial numerator. Failure modes match ContinuedFractionB.
func ContinuedFractionA(gen CFGenerator, pol Policy) (float64, error) {
	eps := math.Max(pol.Eps, minSeriesEps)

	v := gen()
	a0 := v.A
	h := v.B
	if h == 0 {
		h = cfTiny
	}
	c := h
	d := 0.0

	for n := uint32(0); n < pol.MaxIterations; n++ {
		v = gen()

		d = v.B + v.A*d
		if d == 0 {
			d = cfTiny
		}
		c = v.B + v.A/c
		if c == 0 {
			c = cfTiny
		}
		d = 1 / d

		delta := c * d
		h *= delta

		if math.IsInf(h, 0) || math.IsNaN(h) {
			return h, ErrDiverged
		}
		if delta == 0 {
			return h, ErrZeroDelta
		}
		if math.Abs(delta-1) < eps {
			return a0 / h, nil
		}
	}

	return a0 / h, ErrMaxIterations
}
