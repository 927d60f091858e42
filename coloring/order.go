package coloring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cliquesat/core"
)

// Ordering selects the vertex order fed to the first coloring.
type Ordering int

const (
	// DegreeDesc orders by degree descending, ties lowest id.
	DegreeDesc Ordering = iota
	// ColorSort orders by degree descending, then neighborhood density
	// descending, then lowest id.
	ColorSort
	// Degeneracy is the smallest-last order.
	Degeneracy
	// Natural keeps the input order.
	Natural
)

var orderingNames = [...]string{"degree", "colorsort", "degeneracy", "natural"}

// String returns the configuration name of o.
func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return fmt.Sprintf("Ordering(%d)", int(o))
	}

	return orderingNames[o]
}

// ParseOrdering maps a configuration name to an Ordering; "" means DegreeDesc.
func ParseOrdering(s string) (Ordering, error) {
	if s == "" {
		return DegreeDesc, nil
	}
	for i, name := range orderingNames {
		if strings.EqualFold(s, name) {
			return Ordering(i), nil
		}
	}

	return 0, fmt.Errorf("coloring: unknown ordering %q", s)
}

// InitialOrder returns a fresh slice with cand arranged according to o.
// Duplicates and out-of-range ids are dropped; degrees are measured inside cand.
//
// Complexity: O(|S|·n/64 + |S| log |S|); ColorSort adds O(Σ deg·n/64).
func InitialOrder(g *core.Graph, cand []int, o Ordering) []int {
	var (
		set = core.NewBitset(g.Order())
		out = make([]int, 0, len(cand))
	)
	for _, v := range cand {
		if v >= 0 && v < g.Order() && !set.Has(v) {
			set.Add(v)
			out = append(out, v)
		}
	}
	if o == Natural || len(out) < 2 {
		return out
	}

	deg := make(map[int]int, len(out))
	for _, v := range out {
		deg[v] = g.DegreeWithin(v, set)
	}

	switch o {
	case Degeneracy:
		return smallestLast(g, out, set, deg)
	case ColorSort:
		dens := make(map[int]float64, len(out))
		for _, v := range out {
			dens[v] = neighborhoodDensity(g, v, set)
		}
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if deg[a] != deg[b] {
				return deg[a] > deg[b]
			}
			if dens[a] != dens[b] {
				return dens[a] > dens[b]
			}
			return a < b
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if deg[a] != deg[b] {
				return deg[a] > deg[b]
			}
			return a < b
		})
	}

	return out
}

// neighborhoodDensity is |E(N_S(v))| / C(|N_S(v)|, 2), 0 for fewer than two neighbors.
func neighborhoodDensity(g *core.Graph, v int, set core.Bitset) float64 {
	nb := g.Row(v).Clone()
	nb.And(set)
	d := nb.Count()
	if d < 2 {
		return 0
	}
	var twice int
	nb.ForEach(func(u int) { twice += g.DegreeWithin(u, nb) })

	return float64(twice/2) / float64(d*(d-1)/2)
}

// smallestLast repeatedly removes a minimum-degree vertex (ties lowest id)
// and returns the removal sequence reversed.
func smallestLast(g *core.Graph, vs []int, set core.Bitset, deg map[int]int) []int {
	var (
		alive = set.Clone()
		order = make([]int, len(vs))
		pos   = len(vs) - 1
	)
	for pos >= 0 {
		pick, pickDeg := -1, 0
		for _, v := range vs {
			if !alive.Has(v) {
				continue
			}
			if pick < 0 || deg[v] < pickDeg || (deg[v] == pickDeg && v < pick) {
				pick, pickDeg = v, deg[v]
			}
		}
		alive.Remove(pick)
		order[pos] = pick
		pos--
		for _, u := range g.Neighbors(pick) {
			if alive.Has(u) {
				deg[u]--
			}
		}
	}

	return order
}
