// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Emits edges (i, i+1) for i = 0..n-2 in ascending order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/cliquesat/core"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		first := b.AddVertices(n)
		for i := 0; i < n-1; i++ {
			if err := addEdge(MethodPath, b, first+i, first+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
