// Package randutil - RNG utilities shared by every stochastic step of a session.
//
// This file centralizes deterministic random generation for the generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws in identical order.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging on a nil source; callers validate presence.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. One session owns one *rand.Rand.
package randutil

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultSeed int64 = 1

// coinHeads is the threshold below which a uniform draw counts as heads.
const coinHeads = 0.5

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// IntRange draws an integer uniformly from the closed interval [lo, hi].
// Callers guarantee lo ≤ hi; exactly one Intn draw is consumed.
//
// Complexity: O(1).
func IntRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Bernoulli reports true with probability p (one Float64 draw).
// p ≤ 0 is never true and p ≥ 1 is always true, yet a draw is still
// consumed so the stream position does not depend on p.
//
// Complexity: O(1).
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Coin is a fair Bernoulli draw; true means heads.
func Coin(rng *rand.Rand) bool {
	return Bernoulli(rng, coinHeads)
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = FromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
