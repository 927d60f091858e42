package bnb

import (
	"sort"

	"github.com/katalvlaran/cliquesat/core"
)

// GreedyClique builds a maximal clique inside cand: repeatedly take the
// candidate with the most neighbors among the remaining candidates (ties
// lowest id) and keep only its neighbors. The result is sorted ascending.
//
// Complexity: O(ω·|cand|·n/64).
func GreedyClique(g *core.Graph, cand []int) []int {
	var (
		left   = core.BitsetOf(g.Order(), cand)
		clique []int
	)
	for !left.Empty() {
		pick, pickDeg := -1, -1
		left.ForEach(func(v int) {
			if d := g.DegreeWithin(v, left); d > pickDeg {
				pick, pickDeg = v, d
			}
		})
		clique = append(clique, pick)
		left.Remove(pick)
		left.And(g.Row(pick))
	}
	sort.Ints(clique)

	return clique
}
