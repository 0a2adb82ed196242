package k3piplot

import (
	"math"
)

// NegPiToPi maps an angle in radians onto (-pi, pi], preserving its value
// modulo 2pi. It is idempotent on that range.
func NegPiToPi(rad float64) float64 {
	a := math.Mod(rad, 2*math.Pi)
	switch {
	case a <= -math.Pi:
		a += 2 * math.Pi
	case a > math.Pi:
		a -= 2 * math.Pi
	}
	return a
}

// ZeroToTwoPi maps an angle in radians onto [0, 2pi), preserving its value
// modulo 2pi.
func ZeroToTwoPi(rad float64) float64 {
	a := math.Mod(rad, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Quadrant returns the quadrant (1-4) selected by the signs of
// sin(2*thetaA) and sin(2*thetaC), or 0 if either is exactly zero.
func Quadrant(sin2ThetaA, sin2ThetaC float64) int {
	switch {
	case sin2ThetaA < 0 && sin2ThetaC < 0:
		return 1
	case sin2ThetaA < 0 && sin2ThetaC > 0:
		return 2
	case sin2ThetaA > 0 && sin2ThetaC < 0:
		return 3
	case sin2ThetaA > 0 && sin2ThetaC > 0:
		return 4
	}
	return 0
}
