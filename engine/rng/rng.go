// Package rng provides the random sources threaded through world generation
// and turn resolution. Every stochastic decision goes through a Source so a
// fixed seed (or a Script) reproduces a run exactly.
package rng

import "math/rand"

// Source is the random interface consumed by the generator and the engine.
type Source interface {
	// Intn returns an integer in [0, n).
	Intn(n int) int
	// Range returns an integer in [lo, hi].
	Range(lo, hi int) int
	// Chance returns true with probability p.
	Chance(p float64) bool
	// WeightedSelect returns an index chosen by weighted random selection.
	WeightedSelect(weights []int) int
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every call.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns an integer in [0, n). n <= 0 yields 0.
func (r *RNG) Intn(n int) int {
	r.pos++
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Range returns an integer in [lo, hi]. If hi < lo, lo is returned.
func (r *RNG) Range(lo, hi int) int {
	r.pos++
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	r.pos++
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.src.Float64() < p
}

// WeightedSelect returns an index chosen by weighted random selection.
// weights must be non-empty with all positive values.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r.pos++
	if total <= 0 {
		return 0
	}
	roll := r.src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Seed returns the seed the RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
