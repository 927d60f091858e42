// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_planted.go - implementation of PlantedClique(n, p, k).
//
// Model:
//   - Sample G(n,p) exactly as Random(n, p) does, then choose k distinct
//     vertices with a partial Fisher–Yates shuffle and join them pairwise.
//   - The result has ω ≥ k; for k well above 2·log2(n) the planted clique is
//     the maximum one with high probability.
//
// Contract:
//   - n ≥ 1, 1 ≤ k ≤ n (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); the planted set is
//     always random.
//
// Complexity: O(n²) trials + O(k²) clique edges.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cliquesat/core"
)

// PlantedClique returns a Constructor for G(n,p) with a hidden k-clique.
func PlantedClique(n int, p float64, k int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateRandom(MethodPlantedClique, n, p, cfg); err != nil {
			return err
		}
		if err := validateMin(MethodPlantedClique, k, MinCompleteNodes); err != nil {
			return err
		}
		if k > n {
			return fmt.Errorf("%s: k=%d > n=%d: %w", MethodPlantedClique, k, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodPlantedClique, ErrNeedRandSource)
		}

		first := b.AddVertices(n)
		ids := block(first, n)
		if err := sampleEdges(MethodPlantedClique, b, ids, p, cfg.rng); err != nil {
			return err
		}

		// Partial Fisher–Yates: the first k slots become the planted set.
		perm := block(first, n)
		for i := 0; i < k; i++ {
			j := i + cfg.rng.Intn(n-i)
			perm[i], perm[j] = perm[j], perm[i]
		}
		planted := perm[:k]
		sort.Ints(planted)

		return addCompleteEdges(MethodPlantedClique, b, planted)
	}
}
