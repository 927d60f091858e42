// Package reduce shrinks the candidate set of a maximum-clique search before
// and during branch-and-bound.
//
// Rule (degree peeling):
//
//	A vertex v that could only belong to cliques of size ≤ lb is useless once
//	an incumbent of size lb is known. Any clique of size lb+1 gives each of its
//	members lb neighbors inside the clique, so v is removed when
//
//	    deg_S(v) + 1 <= lb
//
//	where deg_S is the degree inside the surviving candidate set S. Removing v
//	lowers the degree of its neighbors, so removal cascades to a fixpoint
//	(the (lb)-core of the candidate subgraph).
//
// Guarantees:
//   - Vertices in the protect set (the confirmed incumbent) are never removed.
//   - Every clique of size > lb inside the input survives intact.
//   - Kept preserves the relative order of the input candidates.
//   - lb <= 1 removes nothing.
//
// Complexity:
//   - O(|S|·n/64) to seed degrees plus O(Σ deg) for the cascade.
package reduce

import "github.com/katalvlaran/cliquesat/core"

// Result reports the outcome of one reduction pass.
type Result struct {
	// Kept are the surviving candidates, in input order.
	Kept []int
	// Removed are the peeled vertices, in removal order.
	Removed []int
	// Rounds counts cascade waves; 0 means nothing was removed.
	Rounds int
}

// ByDegree peels candidates whose in-set degree cannot support a clique
// larger than lowerBound. Candidates outside 0..n-1 and duplicates are ignored.
func ByDegree(g *core.Graph, candidates []int, lowerBound int, protect []int) Result {
	var (
		n     = g.Order()
		alive = core.NewBitset(n)
		keep  = core.BitsetOf(n, protect)
		deg   = make([]int, n)
		res   Result
	)
	for _, v := range candidates {
		if v >= 0 && v < n {
			alive.Add(v)
		}
	}
	if lowerBound <= 1 {
		res.Kept = inOrder(alive, candidates)
		return res
	}

	// Seed wave: every alive vertex below the threshold.
	var wave []int
	alive.ForEach(func(v int) {
		deg[v] = g.DegreeWithin(v, alive)
		if deg[v]+1 <= lowerBound && !keep.Has(v) {
			wave = append(wave, v)
		}
	})

	for len(wave) > 0 {
		res.Rounds++
		for _, v := range wave {
			alive.Remove(v)
			res.Removed = append(res.Removed, v)
		}
		var next []int
		for _, v := range wave {
			for _, u := range g.Neighbors(v) {
				if !alive.Has(u) {
					continue
				}
				deg[u]--
				// Exactly at the threshold crossing so u is queued once.
				if deg[u]+1 == lowerBound && !keep.Has(u) {
					next = append(next, u)
				}
			}
		}
		wave = next
	}

	res.Kept = inOrder(alive, candidates)

	return res
}

// inOrder returns the members of set in the order they appear in order,
// each once. set is consumed.
func inOrder(set core.Bitset, order []int) []int {
	out := make([]int, 0, len(order))
	for _, v := range order {
		if v >= 0 && v < len(set)*64 && set.Has(v) {
			out = append(out, v)
			set.Remove(v)
		}
	}

	return out
}
