package erf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/erf"
)

const tol = 1e-14

// TestErf_KnownValues pins a few reference points computed with
// extended precision.
func TestErf_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Half", 0.5, 0.5204998778130465},
		{"One", 1, 0.8427007929497149},
		{"Two", 2, 0.9953222650189527},
		{"Three", 3, 0.9999779095030014},
		{"MinusOne", -1, -0.8427007929497149},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InEpsilon(t, tc.want, erf.Erf(tc.x), tol, "Erf(%v)", tc.x)
		})
	}
	assert.Zero(t, erf.Erf(0), "Erf(0) must be exactly zero")
}

// TestErfc_KnownValues pins reference points including the deep tail
// where plain 1 − erf would lose every digit.
func TestErfc_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"Zero", 0, 1},
		{"One", 1, 0.15729920705028513},
		{"Three", 3, 2.209049699858544e-5},
		{"Five", 5, 1.5374597944280349e-12},
		{"Ten", 10, 2.0884875837625446e-45},
		{"Twenty", 20, 5.3958656116079012e-176},
		{"MinusTwo", -2, 1.9953222650189527},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InEpsilon(t, tc.want, erf.Erfc(tc.x), 1e-13, "Erfc(%v)", tc.x)
		})
	}
}

// TestErf_Symmetry checks erf(−x) == −erf(x) and erfc(−x) == 2 − erfc(x)
// bitwise, since both identities are implemented by reflection rather
// than re-approximation.
func TestErf_Symmetry(t *testing.T) {
	for _, x := range []float64{1e-12, 0.1, 0.3, 0.5, 0.9, 1.5, 2.0, 3.7, 5.0, 8.0} {
		assert.Equal(t, -erf.Erf(x), erf.Erf(-x), "erf odd symmetry at %v", x)
		assert.InEpsilon(t, 2-erf.Erfc(x), erf.Erfc(-x), tol, "erfc reflection at %v", x)
	}
}

// TestErf_Saturation checks the tuned cutoffs: erf saturates to 1 well
// before erfc underflows to 0.
func TestErf_Saturation(t *testing.T) {
	assert.Equal(t, 1.0, erf.Erf(6), "Erf(6)")
	assert.Equal(t, 1.0, erf.Erf(100), "Erf(100)")
	assert.Equal(t, 1.0, erf.Erf(math.Inf(1)), "Erf(+Inf)")
	assert.Equal(t, -1.0, erf.Erf(math.Inf(-1)), "Erf(-Inf)")

	assert.NotZero(t, erf.Erfc(27), "Erfc(27) is still sub-normal, not zero")
	assert.Zero(t, erf.Erfc(28), "Erfc(28)")
	assert.Zero(t, erf.Erfc(math.Inf(1)), "Erfc(+Inf)")
	assert.Equal(t, 2.0, erf.Erfc(math.Inf(-1)), "Erfc(-Inf)")
}

// TestErf_AgreesWithStdlib cross-checks against math.Erf/math.Erfc on a
// sweep of moderate arguments. The two implementations are independent,
// so agreement to ~1 ulp is strong evidence for both.
func TestErf_AgreesWithStdlib(t *testing.T) {
	for x := -6.0; x <= 6.0; x += 0.0625 {
		assert.InDelta(t, math.Erf(x), erf.Erf(x), 1e-15, "Erf(%v)", x)
		if math.Erfc(x) > 1e-300 {
			assert.InEpsilon(t, math.Erfc(x), erf.Erfc(x), 1e-13, "Erfc(%v)", x)
		}
	}
}

// TestErfcx_Identity checks erfcx(x) == exp(x²)·erfc(x) where the right
// side is representable, and the asymptotic 1/(x·sqrt(pi)) tail beyond.
func TestErfcx_Identity(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 1, 2, 5, 10, 25} {
		want := math.Exp(x*x) * erf.Erfc(x)
		if want > 0 && !math.IsInf(want, 1) {
			assert.InEpsilon(t, want, erf.Erfcx(x), 1e-12, "Erfcx(%v)", x)
		}
	}

	// Far tail: erfcx(x) ~ 1/(x·sqrt(pi)).
	x := 1e8
	assert.InEpsilon(t, 1/(x*math.SqrtPi), erf.Erfcx(x), 1e-7, "Erfcx far tail")

	// Negative arguments grow like 2·exp(x²) and finally overflow.
	assert.InEpsilon(t, 2*math.Exp(4)-erf.Erfcx(2), erf.Erfcx(-2), 1e-12, "Erfcx(-2)")
	assert.True(t, math.IsInf(erf.Erfcx(-30), 1), "Erfcx(-30) overflows to +Inf")
}

// TestErfInv_RoundTrip walks x across [-5, 5] and requires
// ErfInv(Erf(x)) to reproduce x. The tolerance widens with exp(x²):
// once erf(x) sits a few ulps from 1 the inverse problem itself is
// ill-conditioned, and no implementation can do better.
func TestErfInv_RoundTrip(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.125 {
		got := erf.ErfInv(erf.Erf(x))
		delta := 1e-13 + 4e-15*math.Exp(x*x)
		assert.InDelta(t, x, got, delta, "round trip at %v", x)
	}
}

// TestErfcInv_RoundTrip does the complementary round trip, which keeps
// full accuracy much further into the tail than ErfInv can.
func TestErfcInv_RoundTrip(t *testing.T) {
	for _, x := range []float64{-3, -1, -0.5, 0, 0.25, 1, 2, 5, 10, 15, 20, 25} {
		q := erf.Erfc(x)
		require.NotZero(t, q, "tail underflowed at %v", x)
		got := erf.ErfcInv(q)
		assert.InDelta(t, x, got, 2e-12*(1+math.Abs(x)), "round trip at %v", x)
	}
}

// TestErfInv_Endpoints covers the closed-domain edges and out-of-domain
// NaN policy.
func TestErfInv_Endpoints(t *testing.T) {
	assert.Zero(t, erf.ErfInv(0), "ErfInv(0)")
	assert.True(t, math.IsInf(erf.ErfInv(1), 1), "ErfInv(1)")
	assert.True(t, math.IsInf(erf.ErfInv(-1), -1), "ErfInv(-1)")
	assert.True(t, math.IsNaN(erf.ErfInv(1.5)), "ErfInv(1.5)")
	assert.True(t, math.IsNaN(erf.ErfInv(-1.5)), "ErfInv(-1.5)")
	assert.True(t, math.IsNaN(erf.ErfInv(math.NaN())), "ErfInv(NaN)")

	assert.True(t, math.IsInf(erf.ErfcInv(0), 1), "ErfcInv(0)")
	assert.True(t, math.IsInf(erf.ErfcInv(2), -1), "ErfcInv(2)")
	assert.Zero(t, erf.ErfcInv(1), "ErfcInv(1)")
	assert.True(t, math.IsNaN(erf.ErfcInv(-0.1)), "ErfcInv(-0.1)")
	assert.True(t, math.IsNaN(erf.ErfcInv(2.1)), "ErfcInv(2.1)")
}

// TestErfInv_Antisymmetry checks erfInv(−p) == −erfInv(p) bitwise.
func TestErfInv_Antisymmetry(t *testing.T) {
	for _, p := range []float64{1e-10, 0.01, 0.25, 0.5, 0.75, 0.9, 0.999} {
		assert.Equal(t, -erf.ErfInv(p), erf.ErfInv(-p), "antisymmetry at %v", p)
	}
}

// TestErf_NaNPropagation confirms NaN in, NaN out across the family.
func TestErf_NaNPropagation(t *testing.T) {
	nan := math.NaN()
	assert.True(t, math.IsNaN(erf.Erf(nan)))
	assert.True(t, math.IsNaN(erf.Erfc(nan)))
	assert.True(t, math.IsNaN(erf.Erfcx(nan)))
}
