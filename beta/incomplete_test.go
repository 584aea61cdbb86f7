package beta_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/beta"
	"github.com/katalvlaran/lvlmath/numkit"
)

func TestRegularizedBeta_ClosedForms(t *testing.T) {
	// I_x(1,1) = x.
	for _, x := range []float64{0.1, 0.5, 0.9} {
		p, err := beta.RegularizedBeta(x, 1, 1)
		require.NoError(t, err)
		assert.InDelta(t, x, p, 1e-15, "I_x(1,1), x=%v", x)
	}

	// I_x(a,1) = x^a and I_x(1,b) = 1 − (1−x)^b.
	for _, x := range []float64{0.05, 0.4, 0.97} {
		p, err := beta.RegularizedBeta(x, 3.5, 1)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Pow(x, 3.5), p, 1e-14, "I_x(a,1), x=%v", x)

		p, err = beta.RegularizedBeta(x, 1, 2.25)
		require.NoError(t, err)
		assert.InEpsilon(t, -math.Expm1(2.25*math.Log1p(-x)), p, 1e-14, "I_x(1,b), x=%v", x)
	}

	// Arcsine distribution: I_x(1/2,1/2) = (2/π)·asin(√x).
	for _, x := range []float64{0.01, 0.3, 0.75} {
		p, err := beta.RegularizedBeta(x, 0.5, 0.5)
		require.NoError(t, err)
		assert.InEpsilon(t, 2/math.Pi*math.Asin(math.Sqrt(x)), p, 1e-15, "x=%v", x)
	}

	// I_x(2,2) = x²(3−2x) and the quartic I_x(2,3) = 12·B_x(2,3).
	p, err := beta.RegularizedBeta(0.2, 2, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.104, p, 1e-14, "I_0.2(2,2)")

	p, err = beta.RegularizedBeta(0.25, 2, 3)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.26171875, p, 1e-14, "I_0.25(2,3)")
}

func TestRegularizedBeta_Endpoints(t *testing.T) {
	p, err := beta.RegularizedBeta(0, 2.5, 3.5)
	require.NoError(t, err)
	assert.Zero(t, p, "x=0")

	p, err = beta.RegularizedBeta(1, 2.5, 3.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p, "x=1")

	q, err := beta.RegularizedBetaComplement(0, 2.5, 3.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q, "complement at x=0")

	// Degenerate parameters concentrate all mass at an endpoint.
	p, err = beta.RegularizedBeta(0.5, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p, "a=0")
	p, err = beta.RegularizedBeta(0.5, 2, 0)
	require.NoError(t, err)
	assert.Zero(t, p, "b=0")
}

func TestRegularizedBeta_Domain(t *testing.T) {
	for _, c := range [][3]float64{
		{-0.1, 2, 3}, {1.1, 2, 3}, {0.5, -1, 3}, {0.5, 2, -3},
		{0.5, 0, 0}, {math.NaN(), 2, 3}, {0.5, math.NaN(), 3},
	} {
		p, err := beta.RegularizedBeta(c[0], c[1], c[2])
		require.NoError(t, err)
		assert.True(t, math.IsNaN(p), "x=%v a=%v b=%v", c[0], c[1], c[2])
	}

	// The non-normalised functions need strictly positive parameters.
	p, err := beta.IncompleteBeta(0.5, 0, 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(p), "B_x needs a > 0")
}

// The complement identity P + Q = 1 across cases chosen to land in each
// evaluation region: small-parameter series, the stepped series, the
// large-a small-b expansion, the binomial sum, and both fraction paths.
func TestRegularizedBeta_ComplementIdentity(t *testing.T) {
	cases := [][3]float64{
		{2, 3, 0.5},
		{0.1, 0.7, 0.01},
		{0.3, 0.4, 0.9},
		{0.05, 0.06, 0.31},
		{5, 1.5, 0.3},
		{20, 30, 0.4},
		{20.5, 30.5, 0.4},
		{50, 60, 0.7},
		{3, 45, 0.1},
		{45, 3, 0.9},
		{100.5, 100.5, 0.5},
		{17, 0.4, 0.95},
		{0.5, 40, 0.02},
		{4, 4, 0.7},
		{1e4, 1e4, 0.49},
	}
	for _, c := range cases {
		a, b, x := c[0], c[1], c[2]
		p, err := beta.RegularizedBeta(x, a, b)
		require.NoError(t, err, "a=%v b=%v x=%v", a, b, x)
		q, err := beta.RegularizedBetaComplement(x, a, b)
		require.NoError(t, err, "a=%v b=%v x=%v", a, b, x)
		assert.InDelta(t, 1.0, p+q, 1e-12, "a=%v b=%v x=%v p=%v q=%v", a, b, x, p, q)
		assert.True(t, p >= 0 && q >= 0, "a=%v b=%v x=%v", a, b, x)
	}
}

// I_x(a,b) = 1 − I_{1−x}(b,a) holds by the reflection symmetry of the
// integrand.
func TestRegularizedBeta_Reflection(t *testing.T) {
	cases := [][3]float64{
		{2.5, 7, 0.2}, {0.4, 12, 0.03}, {33, 41.5, 0.55}, {1.5, 0.5, 0.8},
	}
	for _, c := range cases {
		a, b, x := c[0], c[1], c[2]
		p, err := beta.RegularizedBeta(x, a, b)
		require.NoError(t, err)
		q, err := beta.RegularizedBeta(1-x, b, a)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p+q, 1e-12, "a=%v b=%v x=%v", a, b, x)
	}
}

// Integer parameters reduce to a binomial tail sum, which a direct
// summation reproduces for small n.
func TestRegularizedBeta_BinomialTail(t *testing.T) {
	choose := func(n, k int) float64 {
		r := 1.0
		for i := 1; i <= k; i++ {
			r *= float64(n-k+i) / float64(i)
		}

		return r
	}
	a, b := 3, 5
	n := a + b - 1
	for _, x := range []float64{0.15, 0.5, 0.85} {
		direct := 0.0
		for i := a; i <= n; i++ {
			direct += choose(n, i) * math.Pow(x, float64(i)) * math.Pow(1-x, float64(n-i))
		}
		p, err := beta.RegularizedBeta(x, float64(a), float64(b))
		require.NoError(t, err)
		assert.InEpsilon(t, direct, p, 1e-13, "x=%v", x)
	}
}

func TestRegularizedBeta_SymmetricMidpoint(t *testing.T) {
	// I_{1/2}(a,a) = 1/2 for any a by symmetry.
	for _, a := range []float64{0.5, 1, 3, 25, 1000} {
		p, err := beta.RegularizedBeta(0.5, a, a)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, p, 1e-13, "a=%v", a)
	}
}

func TestIncompleteBeta_NonNormalised(t *testing.T) {
	// B_x(2,3) = x²/2 − 2x³/3 + x⁴/4.
	quartic := func(x float64) float64 {
		return x*x/2 - 2*x*x*x/3 + x*x*x*x/4
	}
	for _, x := range []float64{0.1, 0.4, 0.8} {
		v, err := beta.IncompleteBeta(x, 2, 3)
		require.NoError(t, err)
		assert.InEpsilon(t, quartic(x), v, 1e-13, "x=%v", x)
	}

	// Lower plus upper part reassembles the complete function.
	cases := [][3]float64{{2, 3, 0.4}, {0.5, 0.75, 0.2}, {6.5, 2.25, 0.66}}
	for _, c := range cases {
		a, b, x := c[0], c[1], c[2]
		lo, err := beta.IncompleteBeta(x, a, b)
		require.NoError(t, err)
		hi, err := beta.IncompleteBetaComplement(x, a, b)
		require.NoError(t, err)
		assert.InEpsilon(t, beta.Beta(a, b), lo+hi, 1e-12, "a=%v b=%v x=%v", a, b, x)
	}

	// Consistency with the regularised form.
	v, err := beta.IncompleteBeta(0.3, 4.5, 2.5)
	require.NoError(t, err)
	p, err := beta.RegularizedBeta(0.3, 4.5, 2.5)
	require.NoError(t, err)
	assert.InEpsilon(t, p*beta.Beta(4.5, 2.5), v, 1e-12)
}

func TestRegularizedBeta_PolicyBudget(t *testing.T) {
	// A two-iteration budget cannot finish the series branch.
	_, err := beta.RegularizedBeta(0.2, 2.5, 3.5,
		numkit.Policy{Eps: 0x1p-53, MaxIterations: 2})
	assert.ErrorIs(t, err, numkit.ErrMaxIterations)
}
