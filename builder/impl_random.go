// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_random.go - implementation of the Random(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cliquesat/core"
)

// Random returns a Constructor that samples G(n,p).
func Random(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateRandom(MethodRandom, n, p, cfg); err != nil {
			return err
		}
		first := b.AddVertices(n)

		return sampleEdges(MethodRandom, b, block(first, n), p, cfg.rng)
	}
}

// validateRandom applies the shared G(n,p) parameter checks in priority order:
// size, probability, then RNG presence.
func validateRandom(method string, n int, p float64, cfg builderConfig) error {
	if err := validateMin(method, n, MinCompleteNodes); err != nil {
		return err
	}
	if err := validateProbability(method, p); err != nil {
		return err
	}
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sampleEdges runs one Bernoulli trial per pair of ids.
// p ∈ {0,1} never consumes the RNG.
func sampleEdges(method string, b *core.Builder, ids []int, p float64, rng *rand.Rand) error {
	var i, j int
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			switch {
			case p == MinProbability:
				continue
			case p == MaxProbability:
			case rng.Float64() >= p:
				continue
			}
			if err := addEdge(method, b, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
