// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub vertex.
//   • n ≥ MinWheelNodes (outer cycle needs ≥ 3 vertices).
//   • The hub is the first vertex of the block; rim edges come first,
//     then spokes in rim order.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "github.com/katalvlaran/cliquesat/core"

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		var (
			hub  = b.AddVertices(n)
			rim  = n - 1
			i    int
			u, v int
		)
		for i = 0; i < rim; i++ {
			u, v = hub+1+i, hub+1+(i+1)%rim
			if err := addEdge(MethodWheel, b, u, v); err != nil {
				return err
			}
		}
		for i = 0; i < rim; i++ {
			if err := addEdge(MethodWheel, b, hub, hub+1+i); err != nil {
				return err
			}
		}

		return nil
	}
}
