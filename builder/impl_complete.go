// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_complete.go - implementation of Complete(n) and Empty(n) constructors.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds a fresh block of n vertices.
//   • Complete emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Complete: O(n²) edges. Empty: O(1).

package builder

import "github.com/katalvlaran/cliquesat/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		first := b.AddVertices(n)

		return addCompleteEdges(MethodComplete, b, block(first, n))
	}
}

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodEmpty, n, MinCompleteNodes); err != nil {
			return err
		}
		b.AddVertices(n)

		return nil
	}
}
