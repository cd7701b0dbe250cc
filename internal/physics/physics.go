// Package physics provides scalar math helpers for the 1D combat axis.
package physics

import "math"

// Gap returns the absolute horizontal distance between two x positions.
func Gap(x1, x2 float64) float64 {
	return math.Abs(x1 - x2)
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0, or 1 depending on the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
