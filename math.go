package landing

import "github.com/gonum/floats"

// sign returns the sign of a given number, or 0 when the number is zero
// within 1e-12. The zero branch matters in the overshoot guard: a zero
// velocity error must yield no thrust adjustment rather than an undefined
// division.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 0
	}
	if v < 0 {
		return -1
	}
	return 1
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
