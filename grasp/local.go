package grasp

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/cliquesat/core"
)

// improver runs the deterministic local search on one clique.
//
// State, for every vertex v outside the clique:
//
//	miss[v] = number of clique members not adjacent to v
//
// miss[v] == 0 means v can be added; miss[v] == 1 means v can replace the
// single member it misses. Adding or dropping a member updates miss in O(n).
type improver struct {
	g      *core.Graph
	in     core.Bitset
	miss   []int
	tabu   []int // move index until which a vertex may not re-enter by plateau swap
	size   int
	scrat  []int
	groups map[int][]int
}

func newImprover(g *core.Graph) *improver {
	return &improver{
		g:      g,
		in:     core.NewBitset(g.Order()),
		miss:   make([]int, g.Order()),
		tabu:   make([]int, g.Order()),
		groups: make(map[int][]int),
	}
}

func (im *improver) reset(clique []int) {
	im.in.Clear()
	im.size = 0
	for v := range im.miss {
		im.miss[v] = 0
		im.tabu[v] = 0
	}
	for _, v := range clique {
		im.add(v)
	}
}

func (im *improver) add(x int) {
	row := im.g.Row(x)
	for v := range im.miss {
		if v != x && !row.Has(v) {
			im.miss[v]++
		}
	}
	im.in.Add(x)
	im.size++
}

func (im *improver) drop(x int) {
	row := im.g.Row(x)
	for v := range im.miss {
		if v != x && !row.Has(v) {
			im.miss[v]--
		}
	}
	im.in.Remove(x)
	im.size--
}

// missed returns the only clique member not adjacent to v (miss[v] == 1).
func (im *improver) missed(v int) int {
	row := im.g.Row(v)
	for w, word := range im.in {
		if rest := word &^ row[w]; rest != 0 {
			return w<<6 + bits.TrailingZeros64(rest)
		}
	}

	return -1
}

// better orders by degree descending, then id ascending.
func (im *improver) better(a, b int) bool {
	da, db := im.g.Degree(a), im.g.Degree(b)
	if da != db {
		return da > db
	}
	return a < b
}

// tryAdd adds the best free vertex with miss 0.
func (im *improver) tryAdd() bool {
	best := -1
	for v, m := range im.miss {
		if m == 0 && !im.in.Has(v) && (best < 0 || im.better(v, best)) {
			best = v
		}
	}
	if best < 0 {
		return false
	}
	im.add(best)

	return true
}

// oneSwappable groups the vertices with miss 1 by the member they miss.
// Members come back in ascending order.
func (im *improver) oneSwappable() []int {
	for k := range im.groups {
		delete(im.groups, k)
	}
	im.scrat = im.scrat[:0]
	for v, m := range im.miss {
		if m != 1 || im.in.Has(v) {
			continue
		}
		u := im.missed(v)
		if u < 0 {
			continue
		}
		if _, ok := im.groups[u]; !ok {
			im.scrat = append(im.scrat, u)
		}
		im.groups[u] = append(im.groups[u], v)
	}
	sort.Ints(im.scrat)

	return im.scrat
}

// trySwap12 drops one member and adds two adjacent vertices that both miss
// only that member. Vertices inside a group are ascending, so the first pair
// found is the lexicographically smallest.
func (im *improver) trySwap12(members []int) bool {
	for _, u := range members {
		grp := im.groups[u]
		for i := 0; i < len(grp); i++ {
			row := im.g.Row(grp[i])
			for j := i + 1; j < len(grp); j++ {
				if row.Has(grp[j]) {
					im.drop(u)
					im.add(grp[i])
					im.add(grp[j])
					return true
				}
			}
		}
	}

	return false
}

// tryPlateau swaps one member for a non-tabu vertex that misses only it.
func (im *improver) tryPlateau(members []int, move int) bool {
	var best, bestU = -1, -1
	for _, u := range members {
		for _, v := range im.groups[u] {
			if im.tabu[v] > move {
				continue
			}
			if best < 0 || im.better(v, best) {
				best, bestU = v, u
			}
		}
	}
	if best < 0 {
		return false
	}
	im.drop(bestU)
	im.tabu[bestU] = move + tabuTenure
	im.add(best)

	return true
}

// improve applies at most maxMoves moves and returns the best clique seen,
// sorted ascending, together with the moves spent.
func (im *improver) improve(clique []int, maxMoves int) ([]int, int) {
	im.reset(clique)
	var (
		best = im.in.AppendTo(nil)
		move int
	)
	for move = 0; move < maxMoves; move++ {
		if im.tryAdd() {
			if im.size > len(best) {
				best = im.in.AppendTo(best[:0])
			}
			continue
		}
		members := im.oneSwappable()
		if im.trySwap12(members) {
			if im.size > len(best) {
				best = im.in.AppendTo(best[:0])
			}
			continue
		}
		if !im.tryPlateau(members, move) {
			break
		}
	}

	return best, move
}
