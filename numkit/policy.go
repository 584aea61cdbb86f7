package numkit

// Policy bundles the convergence tolerance and iteration cap applied to
// every series and continued-fraction evaluation. It is an immutable
// value: pass it by value, never mutate a shared instance.
//
// Fields:
//   - Eps           — target relative error. Primitives clamp it to a
//     floor (2⁻⁵² plain, 2⁻⁶² Kahan) since a zero epsilon never
//     terminates.
//   - MaxIterations — computational budget, not a wall-clock timeout.
//     Exhausting it yields ErrMaxIterations.
type Policy struct {
	Eps           float64
	MaxIterations uint32
}

// DefaultPolicy returns the process-wide default evaluation policy:
// eps = 2⁻⁵³ and a budget of one million iterations.
func DefaultPolicy() Policy {
	return Policy{
		Eps:           0x1p-53,
		MaxIterations: 1_000_000,
	}
}

// From selects the first policy of pol, falling back to DefaultPolicy.
// It backs the optional-trailing-argument convention used across
// lvlmath:
//
//	func GammaP(a, x float64, pol ...numkit.Policy) (float64, error) {
//	    p := numkit.From(pol)
//	    ...
//	}
func From(pol []Policy) Policy {
	if len(pol) > 0 {
		return pol[0]
	}

	return DefaultPolicy()
}
