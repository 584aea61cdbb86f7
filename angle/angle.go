package angle

import "math"

// Full-period constants per unit.
const (
	TurnPeriod   = 1.0
	RadianPeriod = 2 * math.Pi
	DegreePeriod = 360.0
)

// NormalizeTurns maps v into [center−1/2, center+1/2).
func NormalizeTurns(v, center float64) float64 {
	return normalize(v, center, TurnPeriod)
}

// NormalizeRadians maps v into [center−π, center+π).
func NormalizeRadians(v, center float64) float64 {
	return normalize(v, center, RadianPeriod)
}

// NormalizeDegrees maps v into [center−180, center+180).
func NormalizeDegrees(v, center float64) float64 {
	return normalize(v, center, DegreePeriod)
}

// normalize shifts v by whole periods into [lo, lo+period) with
// lo = center − period/2. Rounding in the floor subtraction can land
// the raw result exactly on the excluded upper bound, in which case it
// wraps back to lo.
func normalize(v, center, period float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(center) {
		return math.NaN()
	}

	lo := center - period/2
	n := v - period*math.Floor((v-lo)/period)
	if n < lo+period {
		return n
	}

	return lo
}

// TurnsToRadians converts turns to radians.
func TurnsToRadians(v float64) float64 { return v * RadianPeriod }

// TurnsToDegrees converts turns to degrees.
func TurnsToDegrees(v float64) float64 { return v * DegreePeriod }

// RadiansToTurns converts radians to turns.
func RadiansToTurns(v float64) float64 { return v / RadianPeriod }

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(v float64) float64 { return v * (DegreePeriod / RadianPeriod) }

// DegreesToTurns converts degrees to turns.
func DegreesToTurns(v float64) float64 { return v / DegreePeriod }

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(v float64) float64 { return v * (RadianPeriod / DegreePeriod) }
