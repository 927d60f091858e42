// Package core declares the Graph and Builder types, the sentinel errors and
// the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and clique validation.
var (
	// ErrInvalidGraph classifies every rejected graph input. Specific causes
	// below are joined to it, so errors.Is matches both.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative order")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop")

	// ErrOrderTooLarge indicates a vertex count above MaxOrder.
	ErrOrderTooLarge = errors.New("core: order too large")

	// ErrVertexOutOfRange indicates a vertex id outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNotClique indicates two members of a vertex set are not adjacent.
	ErrNotClique = errors.New("core: not a clique")

	// ErrDuplicateVertex indicates a vertex listed twice in a vertex set.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")
)

// MaxOrder is the largest vertex count NewGraph accepts. Dense rows take
// n²/8 bytes, 512 MiB at MaxOrder; the largest DIMACS benchmarks have about
// 4000 vertices.
const MaxOrder = 1 << 16

// Graph is an immutable simple undirected graph over vertices 0..n-1.
//
// rows holds n bit rows of words uint64 each, row v starting at v*words.
type Graph struct {
	n     int
	words int
	m     int

	rows []uint64
	deg  []int
	nbrs [][]int

	maxDeg int
}

// Builder accumulates vertices and edges before freezing them into a Graph.
// Validation happens in AddEdge so the first bad edge is reported with its
// position; Build never fails on a Builder that reported no errors.
type Builder struct {
	n     int
	edges [][2]int
}

// NewBuilder returns a Builder holding n isolated vertices.
// A negative n is clamped to zero; use NewGraph for strict order checks.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}

	return &Builder{n: n}
}

// Order returns the number of vertices added so far.
func (b *Builder) Order() int { return b.n }

// AddVertex appends one isolated vertex and returns its id.
func (b *Builder) AddVertex() int {
	b.n++

	return b.n - 1
}

// AddVertices appends k isolated vertices and returns the id of the first.
// k <= 0 adds nothing and returns the current order.
func (b *Builder) AddVertices(k int) int {
	first := b.n
	if k > 0 {
		b.n += k
	}

	return first
}

// AddEdge records the undirected edge {u,v}.
// Errors: ErrSelfLoop, ErrVertexOutOfRange, both joined with ErrInvalidGraph.
func (b *Builder) AddEdge(u, v int) error {
	if err := checkEdge(b.n, u, v); err != nil {
		return err
	}
	b.edges = append(b.edges, [2]int{u, v})

	return nil
}

// Build freezes the accumulated topology.
//
// Complexity: O(n²/64 + m) time and space.
func (b *Builder) Build() (*Graph, error) {
	return NewGraph(b.n, b.edges)
}

// NewGraph builds a Graph of order n from an edge list.
// Duplicate edges are accepted and stored once.
//
// Errors: ErrNegativeOrder, ErrOrderTooLarge, ErrSelfLoop, ErrVertexOutOfRange, each joined
// with ErrInvalidGraph and carrying the offending edge index.
//
// Complexity: O(n²/64 + m) time, O(n²/64 + m) space.
func NewGraph(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %w: n=%d", ErrInvalidGraph, ErrNegativeOrder, n)
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("%w: %w: n=%d > %d", ErrInvalidGraph, ErrOrderTooLarge, n, MaxOrder)
	}

	var (
		words = wordsFor(n)
		g     = &Graph{
			n:     n,
			words: words,
			rows:  make([]uint64, n*words),
			deg:   make([]int, n),
			nbrs:  make([][]int, n),
		}
		i, u, v int
	)
	for i = range edges {
		u, v = edges[i][0], edges[i][1]
		if err := checkEdge(n, u, v); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
		if g.rows[u*words+(v>>6)]&(1<<(uint(v)&63)) != 0 {
			continue // duplicate
		}
		g.rows[u*words+(v>>6)] |= 1 << (uint(v) & 63)
		g.rows[v*words+(u>>6)] |= 1 << (uint(u) & 63)
		g.deg[u]++
		g.deg[v]++
		g.m++
	}

	// Neighbor lists are read off the rows so they come out sorted.
	for u = 0; u < n; u++ {
		list := make([]int, 0, g.deg[u])
		g.Row(u).ForEach(func(w int) { list = append(list, w) })
		g.nbrs[u] = list
		if g.deg[u] > g.maxDeg {
			g.maxDeg = g.deg[u]
		}
	}

	return g, nil
}

// checkEdge validates one edge against order n.
func checkEdge(n, u, v int) error {
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: %w: (%d,%d) with n=%d", ErrInvalidGraph, ErrVertexOutOfRange, u, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: %w: (%d,%d)", ErrInvalidGraph, ErrSelfLoop, u, v)
	}

	return nil
}
