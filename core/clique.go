// File: clique.go
// Role: clique membership checks shared by every solver and by tests.

package core

import "fmt"

// IsClique reports whether vs is a set of distinct, in-range, pairwise
// adjacent vertices. The empty set and singletons are cliques.
func IsClique(g *Graph, vs []int) bool {
	return ValidateClique(g, vs) == nil
}

// ValidateClique explains why vs is not a clique of g.
//
// Errors: ErrVertexOutOfRange, ErrDuplicateVertex, ErrNotClique.
//
// Complexity: O(k²) time, O(n/64) space.
func ValidateClique(g *Graph, vs []int) error {
	var (
		seen = NewBitset(g.n)
		i, j int
	)
	for i = range vs {
		if vs[i] < 0 || vs[i] >= g.n {
			return fmt.Errorf("%w: %d with n=%d", ErrVertexOutOfRange, vs[i], g.n)
		}
		if seen.Has(vs[i]) {
			return fmt.Errorf("%w: %d", ErrDuplicateVertex, vs[i])
		}
		seen.Add(vs[i])
	}
	for i = 0; i < len(vs); i++ {
		for j = i + 1; j < len(vs); j++ {
			if !g.IsAdjacent(vs[i], vs[j]) {
				return fmt.Errorf("%w: %d and %d are not adjacent", ErrNotClique, vs[i], vs[j])
			}
		}
	}

	return nil
}

// CommonNeighbors returns the vertices adjacent to every member of vs,
// excluding the members themselves, as a fresh Bitset.
// An empty vs yields every vertex.
//
// Complexity: O(k·n/64).
func CommonNeighbors(g *Graph, vs []int) Bitset {
	out := NewBitset(g.n)
	if len(vs) == 0 {
		for v := 0; v < g.n; v++ {
			out.Add(v)
		}

		return out
	}
	out.CopyFrom(g.Row(vs[0]))
	for _, v := range vs[1:] {
		out.And(g.Row(v))
	}

	return out
}
