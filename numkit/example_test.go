package numkit_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/numkit"
)

// ExampleSumSeries sums the Taylor series of e^1 under the default
// policy. The generator is a closure carrying its own state; each
// evaluation owns a fresh one.
func ExampleSumSeries() {
	term, n := 1.0, 0.0
	next := func() float64 {
		r := term
		n++
		term *= 1 / n

		return r
	}

	sum, err := numkit.SumSeries(next, 0, numkit.DefaultPolicy())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("e = %.15f\n", sum)
	// Output:
	// e = 2.718281828459045
}

// ExampleContinuedFractionB evaluates the golden ratio from its
// all-ones continued fraction.
func ExampleContinuedFractionB() {
	gen := func() numkit.CFTerm { return numkit.CFTerm{A: 1, B: 1} }

	phi, err := numkit.ContinuedFractionB(gen, numkit.DefaultPolicy())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("phi = %.15f\n", phi)
	// Output:
	// phi = 1.618033988749895
}
