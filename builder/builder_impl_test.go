// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// composition and determinism.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/cliquesat/builder"
	"github.com/katalvlaran/cliquesat/core"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					require.True(t, g.IsAdjacent(i, (i+1)%5))
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.False(t, g.IsAdjacent(0, 3))
				require.Equal(t, 1, g.Degree(3))
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 5, g.Degree(0))
				require.False(t, g.IsAdjacent(1, 2))
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 5, g.Degree(0))
				require.True(t, core.IsClique(g, []int{0, 1, 2}))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, core.IsClique(g, g.Vertices()))
			},
		},
		{
			name: "Empty(4)", ctor: builder.Empty(4), wantV: 4, wantE: 0,
		},
		{
			name: "CompleteMultipartite(2,3,1)", ctor: builder.CompleteMultipartite(2, 3, 1), wantV: 6, wantE: 11,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.False(t, g.IsAdjacent(0, 1))
				require.False(t, g.IsAdjacent(2, 4))
				require.True(t, core.IsClique(g, []int{0, 2, 5}))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Order())
			require.Equal(t, tc.wantE, g.Size())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildGraph_DisjointUnion checks that composed constructors do not share vertices.
func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.Equal(t, 6, g.Size())
	require.True(t, core.IsClique(g, []int{3, 4, 5}))
	require.False(t, g.IsAdjacent(2, 3))
}

// TestBuilders_Errors checks sentinel propagation through BuildGraph.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Multipartite()", builder.CompleteMultipartite(), builder.ErrTooFewVertices},
		{"Random(p=2)", builder.Random(5, 2), builder.ErrInvalidProbability},
		{"Random(no rng)", builder.Random(5, 0.5), builder.ErrNeedRandSource},
		{"Planted(k>n)", builder.PlantedClique(5, 0, 6), builder.ErrTooFewVertices},
		{"Planted(no rng)", builder.PlantedClique(5, 0, 3), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandom_Deterministic checks that equal seeds give equal graphs and that
// p ∈ {0,1} needs no RNG.
func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(11)}
	a, err := builder.BuildGraph(opts, builder.Random(40, 0.5))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.Random(40, 0.5))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())

	full, err := builder.BuildGraph(nil, builder.Random(6, 1))
	require.NoError(t, err)
	require.Equal(t, 15, full.Size())

	none, err := builder.BuildGraph(nil, builder.Random(6, 0))
	require.NoError(t, err)
	require.Zero(t, none.Size())
}

// TestPlantedClique checks that with p=0 the only edges are the planted k-clique.
func TestPlantedClique(t *testing.T) {
	t.Parallel()

	const n, k = 60, 12
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.PlantedClique(n, 0, k))
	require.NoError(t, err)
	require.Equal(t, k*(k-1)/2, g.Size())

	var planted []int
	for v := 0; v < g.Order(); v++ {
		if g.Degree(v) > 0 {
			require.Equal(t, k-1, g.Degree(v))
			planted = append(planted, v)
		}
	}
	require.Len(t, planted, k)
	require.True(t, core.IsClique(g, planted))
}
