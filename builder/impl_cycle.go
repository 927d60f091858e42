// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Emits edges (i, (i+1) mod n) for i = 0..n-1 in ascending order.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/cliquesat/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		first := b.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, b, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
