// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// helpers.go - shared edge emitters used by several constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquesat/core"
)

// addEdge forwards to core.Builder.AddEdge with method context.
func addEdge(method string, b *core.Builder, u, v int) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges joins every pair of ids with i<j in lexicographic order.
//
// Complexity: O(k²).
func addCompleteEdges(method string, b *core.Builder, ids []int) error {
	var i, j int
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			if err := addEdge(method, b, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// block returns the ids first..first+n-1.
func block(first, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = first + i
	}

	return ids
}
