// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • The first vertex of the block is the center; leaves follow in index order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/cliquesat/core"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		center := b.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addEdge(MethodStar, b, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
