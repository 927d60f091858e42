// Package grasp - RNG utilities for the randomized construction.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Solve owns its stream.
package grasp

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// rclPick returns an index in [0,size). size ≤ 1 returns 0 without touching rng.
func rclPick(rng *rand.Rand, size int) int {
	if size <= 1 {
		return 0
	}
	return rng.Intn(size)
}
