// Package core provides the immutable undirected Graph used by every solver
// in cliquesat, together with induced views, a fixed-width Bitset and clique
// validation.
//
// The Graph G = (V,E) is simple and dense-friendly:
//
//   - Vertices are the integers 0..n-1; the order n is fixed at construction.
//   - Adjacency is stored as one bit row of ceil(n/64) words per vertex, so
//     IsAdjacent is a single word probe.
//   - Neighbors(v) returns a precomputed ascending slice.
//   - Degrees are cached; Size, Density and MaxDegree are O(1).
//   - Self-loops and out-of-range endpoints are rejected, never normalized.
//   - Duplicate edges (u-v twice, or as v-u) are idempotent.
//
// Construction:
//
//	g, err := core.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
//
//	b := core.NewBuilder(0)
//	first := b.AddVertices(3)
//	_ = b.AddEdge(first, first+1)
//	g, err = b.Build()
//
// Queries:
//
//	Order() int                      // O(1)
//	Size() int                       // O(1)
//	Degree(v int) int                // O(1)
//	Neighbors(v int) []int           // O(1), shared read-only slice
//	IsAdjacent(u, v int) bool        // O(1)
//	Row(v int) Bitset                // O(1), shared read-only bit row
//
// Views:
//
//	InducedSubgraph(vs []int) (*View, error)
//	    Index remapping over the parent graph; no rows are copied.
//
// Cliques:
//
//	IsClique(g, vs) bool
//	ValidateClique(g, vs) error      // range, duplicates, pairwise adjacency
//
// Errors:
//
//	ErrInvalidGraph       - class sentinel joined to every construction error.
//	ErrNegativeOrder      - n < 0.
//	ErrSelfLoop           - edge (v,v).
//	ErrVertexOutOfRange   - endpoint outside 0..n-1.
//	ErrNotClique          - ValidateClique found a non-adjacent pair.
//	ErrDuplicateVertex    - ValidateClique found a repeated vertex.
//
// Concurrency:
//
//	A built Graph is immutable and safe for any number of concurrent readers.
//	Builder and Bitset values are not goroutine-safe.
package core
