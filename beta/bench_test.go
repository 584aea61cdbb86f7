package beta_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/beta"
)

var (
	sink    float64
	sinkErr error
)

func BenchmarkBeta(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = beta.Beta(2.5, 3.5)
	}
}

func BenchmarkLogBeta(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = beta.LogBeta(500, 700.5)
	}
}

func BenchmarkRegularizedBeta_Series(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, sinkErr = beta.RegularizedBeta(0.2, 2.5, 3.5)
	}
}

func BenchmarkRegularizedBeta_Fraction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, sinkErr = beta.RegularizedBeta(0.55, 33, 41.5)
	}
}
