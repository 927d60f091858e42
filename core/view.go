// File: view.go
// Role: induced-subgraph views over a parent Graph.
// Determinism:
//   - Local indices follow the order of the vertex slice given to InducedSubgraph.
// Concurrency:
//   - A View is immutable; it shares the parent's rows.

package core

import "fmt"

// View is the subgraph induced by a vertex subset, addressed by local
// indices 0..k-1. It maps local indices to parent ids and back without
// copying adjacency.
type View struct {
	g      *Graph
	global []int
	local  map[int]int
	deg    []int
}

// InducedSubgraph returns the view induced by vs on g.
//
// Errors: ErrVertexOutOfRange or ErrDuplicateVertex, joined with ErrInvalidGraph.
//
// Complexity: O(k²) time for the local degrees, O(k) space.
func InducedSubgraph(g *Graph, vs []int) (*View, error) {
	var (
		k     = len(vs)
		view  = &View{g: g, global: make([]int, k), local: make(map[int]int, k), deg: make([]int, k)}
		i, j  int
		ok    bool
		v, lk int
	)
	for i, v = range vs {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("%w: %w: %d with n=%d", ErrInvalidGraph, ErrVertexOutOfRange, v, g.n)
		}
		if lk, ok = view.local[v]; ok {
			return nil, fmt.Errorf("%w: %w: %d at positions %d and %d", ErrInvalidGraph, ErrDuplicateVertex, v, lk, i)
		}
		view.local[v] = i
		view.global[i] = v
	}
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			if g.IsAdjacent(view.global[i], view.global[j]) {
				view.deg[i]++
				view.deg[j]++
			}
		}
	}

	return view, nil
}

// Parent returns the graph the view was taken from.
func (w *View) Parent() *Graph { return w.g }

// Order returns the number of vertices in the view.
func (w *View) Order() int { return len(w.global) }

// Global maps a local index to its parent vertex id.
func (w *View) Global(i int) int { return w.global[i] }

// Local maps a parent id to its local index; ok is false if v is not in the view.
func (w *View) Local(v int) (int, bool) {
	i, ok := w.local[v]

	return i, ok
}

// Degree returns the degree of local vertex i inside the view.
func (w *View) Degree(i int) int { return w.deg[i] }

// IsAdjacent reports adjacency between local vertices i and j.
func (w *View) IsAdjacent(i, j int) bool { return w.g.IsAdjacent(w.global[i], w.global[j]) }

// Vertices returns a copy of the parent ids in local order.
func (w *View) Vertices() []int {
	out := make([]int, len(w.global))
	copy(out, w.global)

	return out
}

// ToGraph materializes the view as a standalone Graph over local indices.
//
// Complexity: O(k²).
func (w *View) ToGraph() (*Graph, error) {
	var (
		k     = len(w.global)
		edges = make([][2]int, 0)
		i, j  int
	)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			if w.IsAdjacent(i, j) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return NewGraph(k, edges)
}
