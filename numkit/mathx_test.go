package numkit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/numkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluatePolynomial checks Horner evaluation against a hand
// expansion, including the degenerate empty and constant cases.
func TestEvaluatePolynomial(t *testing.T) {
	// 2 + 3x - x^2 + 0.5x^3 at x = 1.5
	c := []float64{2, 3, -1, 0.5}
	x := 1.5
	want := 2 + 3*x - x*x + 0.5*x*x*x

	assert.Equal(t, want, numkit.EvaluatePolynomial(c, x))
	assert.Equal(t, 0.0, numkit.EvaluatePolynomial(nil, x), "empty polynomial is zero")
	assert.Equal(t, 7.0, numkit.EvaluatePolynomial([]float64{7}, x), "constant polynomial")
}

// TestEvaluateRational cross-checks the ratio helper on both the direct
// path (|x| <= 1) and the reversed 1/x path, including mixed degrees.
func TestEvaluateRational(t *testing.T) {
	num := []float64{1, 1}
	den := []float64{2, 0, 1}

	x := 0.75
	assert.InEpsilon(t, (1+x)/(2+x*x), numkit.EvaluateRational(num, den, x), 1e-15)

	x = 3.0
	assert.InEpsilon(t, (1+x)/(2+x*x), numkit.EvaluateRational(num, den, x), 1e-15)

	x = -5.0
	assert.InEpsilon(t, (1+x)/(2+x*x), numkit.EvaluateRational(num, den, x), 1e-15)
}

// TestEvaluateRational_HugeArgument checks that the reversed form keeps
// the ratio finite when each polynomial alone would overflow.
func TestEvaluateRational_HugeArgument(t *testing.T) {
	num := []float64{5, 4, 3}
	den := []float64{7, 2, 6}
	x := 1e200

	got := numkit.EvaluateRational(num, den, x)
	assert.False(t, math.IsNaN(got), "naive evaluation would give Inf/Inf")
	assert.InEpsilon(t, 0.5, got, 1e-15, "ratio tends to the leading coefficients")
}

// TestLog1pmx compares against the direct expression where it is safe
// and against the Taylor limit where it is not.
func TestLog1pmx(t *testing.T) {
	pol := numkit.DefaultPolicy()

	for _, x := range []float64{0.5, -0.5, 0.9, 3.0, 100.0} {
		got, err := numkit.Log1pmx(x, pol)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Log1p(x)-x, got, 1e-13, "x=%v", x)
	}

	// Tiny argument: log(1+x)-x ~ -x^2/2.
	tiny := 1e-9
	got, err := numkit.Log1pmx(tiny, pol)
	require.NoError(t, err)
	assert.InEpsilon(t, -tiny*tiny/2, got, 1e-9, "taylor limit")

	// Domain edge.
	v, err := numkit.Log1pmx(-1.5, pol)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "x <= -1 is a domain error, signalled by NaN")
}

// TestPowm1 covers the expm1 fast path, the pow fallback, and the
// negative-base domain rules.
func TestPowm1(t *testing.T) {
	assert.InEpsilon(t, math.Pow(1.0000001, 2)-1, numkit.Powm1(1.0000001, 2), 1e-9)
	assert.InEpsilon(t, math.Pow(5, 3)-1, numkit.Powm1(5, 3), 1e-15)
	assert.InEpsilon(t, math.Pow(2, -0.5)-1, numkit.Powm1(2, -0.5), 1e-15)

	// Negative base: integer exponents only.
	assert.True(t, math.IsNaN(numkit.Powm1(-2, 0.5)), "fractional power of negative base")
	assert.InEpsilon(t, 3, numkit.Powm1(-2, 2), 1e-15, "(-2)^2 - 1")
	assert.InEpsilon(t, -9, numkit.Powm1(-2, 3), 1e-15, "(-2)^3 - 1")
}

// TestTwoSum verifies the error term recovers what naive addition
// throws away.
func TestTwoSum(t *testing.T) {
	a, b := 1.0, 1e-20
	s, e := numkit.TwoSum(a, b)
	assert.Equal(t, 1.0, s)
	assert.Equal(t, 1e-20, e, "rounding error must be recovered exactly")
}

// TestSumPrecise exercises a classically cancelling sum.
func TestSumPrecise(t *testing.T) {
	got := numkit.SumPrecise(1e16, 1, -1e16)
	assert.Equal(t, 1.0, got, "compensation must survive cancellation")
}
