package numkit_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/numkit"
)

// BenchmarkSumSeries_Exp measures the plain series loop on the Taylor
// series of e^2 (about 25 terms per call).
func BenchmarkSumSeries_Exp(b *testing.B) {
	pol := numkit.DefaultPolicy()
	for i := 0; i < b.N; i++ {
		term, n := 1.0, 0.0
		next := func() float64 {
			r := term
			n++
			term *= 2 / n

			return r
		}
		if _, err := numkit.SumSeries(next, 0, pol); err != nil {
			b.Fatalf("SumSeries failed: %v", err)
		}
	}
}

// BenchmarkKahanSumSeries_Exp measures the compensated variant on the
// same series for comparison.
func BenchmarkKahanSumSeries_Exp(b *testing.B) {
	pol := numkit.DefaultPolicy()
	for i := 0; i < b.N; i++ {
		term, n := 1.0, 0.0
		next := func() float64 {
			r := term
			n++
			term *= 2 / n

			return r
		}
		if _, err := numkit.KahanSumSeries(next, 0, pol); err != nil {
			b.Fatalf("KahanSumSeries failed: %v", err)
		}
	}
}

// BenchmarkContinuedFractionB_GoldenRatio measures the Lentz loop on
// the all-ones fraction (~80 terms per call).
func BenchmarkContinuedFractionB_GoldenRatio(b *testing.B) {
	pol := numkit.DefaultPolicy()
	gen := func() numkit.CFTerm { return numkit.CFTerm{A: 1, B: 1} }
	for i := 0; i < b.N; i++ {
		if _, err := numkit.ContinuedFractionB(gen, pol); err != nil {
			b.Fatalf("ContinuedFractionB failed: %v", err)
		}
	}
}
