package k3piplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegPiToPiRange(t *testing.T) {
	for a := -25.0; a <= 25.0; a += 0.17 {
		got := NegPiToPi(a)
		assert.True(t, got > -math.Pi && got <= math.Pi, "NegPiToPi(%v) = %v out of range", a, got)

		// Congruent modulo 2pi.
		turns := (a - got) / (2 * math.Pi)
		assert.InDelta(t, math.Round(turns), turns, 1e-9, "NegPiToPi(%v) = %v not congruent", a, got)
	}
}

func TestNegPiToPiIdempotent(t *testing.T) {
	for a := -25.0; a <= 25.0; a += 0.17 {
		got := NegPiToPi(a)
		assert.InDelta(t, got, NegPiToPi(got), 1e-12)
	}
}

func TestNegPiToPiEdges(t *testing.T) {
	assert.Equal(t, math.Pi, NegPiToPi(math.Pi))
	assert.Equal(t, math.Pi, NegPiToPi(-math.Pi))
	assert.Equal(t, 0.0, NegPiToPi(0))
	assert.InDelta(t, -math.Pi+0.25, NegPiToPi(math.Pi+0.25), 1e-12)
}

func TestZeroToTwoPi(t *testing.T) {
	for a := -25.0; a <= 25.0; a += 0.17 {
		got := ZeroToTwoPi(a)
		assert.True(t, got >= 0 && got < 2*math.Pi, "ZeroToTwoPi(%v) = %v out of range", a, got)

		turns := (a - got) / (2 * math.Pi)
		assert.InDelta(t, math.Round(turns), turns, 1e-9, "ZeroToTwoPi(%v) = %v not congruent", a, got)
	}
	assert.Equal(t, 0.0, ZeroToTwoPi(2*math.Pi))
	assert.Equal(t, 0.0, ZeroToTwoPi(0))
}

func TestQuadrant(t *testing.T) {
	assert.Equal(t, 1, Quadrant(-0.5, -0.5))
	assert.Equal(t, 2, Quadrant(-0.5, 0.5))
	assert.Equal(t, 3, Quadrant(0.5, -0.5))
	assert.Equal(t, 4, Quadrant(0.5, 0.5))
	assert.Equal(t, 0, Quadrant(0, 0.5))
	assert.Equal(t, 0, Quadrant(-0.5, 0))
}
