// File: methods.go
// Role: read-only queries on a built Graph.
// Concurrency:
//   - All methods are safe for concurrent use; returned slices are shared
//     and must be treated as read-only.

package core

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of distinct undirected edges m.
func (g *Graph) Size() int { return g.m }

// Density returns 2m / (n(n-1)), or 0 when n < 2.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}

	return 2 * float64(g.m) / (float64(g.n) * float64(g.n-1))
}

// MaxDegree returns Δ(G); an upper bound of Δ+1 holds for any clique.
func (g *Graph) MaxDegree() int { return g.maxDeg }

// Degree returns the number of neighbors of v. Out-of-range v yields 0.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return g.deg[v]
}

// Neighbors returns the ascending neighbor ids of v. Out-of-range v yields nil.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return g.nbrs[v]
}

// IsAdjacent reports whether {u,v} is an edge. Out-of-range ids yield false.
func (g *Graph) IsAdjacent(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.rows[u*g.words+(v>>6)]&(1<<(uint(v)&63)) != 0
}

// Row returns the adjacency bit row of v, aliasing graph storage.
// Callers must not mutate it; Clone it first.
func (g *Graph) Row(v int) Bitset {
	return Bitset(g.rows[v*g.words : (v+1)*g.words : (v+1)*g.words])
}

// Vertices returns a fresh slice 0..n-1.
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns every edge once as (u,v) with u<v, in lexicographic order.
//
// Complexity: O(n + m).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		for _, v := range g.nbrs[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// DegreeWithin returns |N(v) ∩ set|.
//
// Complexity: O(n/64).
func (g *Graph) DegreeWithin(v int, set Bitset) int {
	return g.Row(v).AndCount(set)
}
