package core

import (
	"math"
	"math/rand"
)

// RNG wraps math/rand.Rand with a seed and a call counter so runs can be
// reproduced from the seed alone
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a deterministic RNG from a seed
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a value in [0, 1)
func (r *RNG) Float64() float64 {
	r.pos++
	return r.src.Float64()
}

// Range returns a value in [lo, hi). It returns lo when the range is empty.
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Angle returns a direction in [0, 2π)
func (r *RNG) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// Intn returns an integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Seed returns the seed the RNG was created with
func (r *RNG) Seed() int64 { return r.seed }

// Position returns the number of draws since creation
func (r *RNG) Position() int64 { return r.pos }
