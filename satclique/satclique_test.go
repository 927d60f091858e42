package satclique_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquesat/builder"
	"github.com/katalvlaran/cliquesat/core"
	"github.com/katalvlaran/cliquesat/internal/oracle"
	"github.com/katalvlaran/cliquesat/satclique"
)

var backends = []satclique.Backend{satclique.Gini{}, satclique.Gophersat{}}

func TestEncode(t *testing.T) {
	// Path 0-1-2 plus isolated 3.
	g, err := core.NewGraph(4, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	enc := satclique.Encode(g, []int{2, 1, 0, 3})
	require.Equal(t, []int{2, 1, 0, 3}, enc.Vertices)
	require.Equal(t, 4, enc.Order())
	// Local pairs: (2,0) (2,3) (1,3) (0,3).
	require.Equal(t, [][2]int{{0, 2}, {0, 3}, {1, 3}, {2, 3}}, enc.NonEdges)
}

func TestLookup(t *testing.T) {
	b, err := satclique.Lookup("")
	require.NoError(t, err)
	require.Equal(t, satclique.NameGini, b.Name())

	b, err = satclique.Lookup("Gophersat")
	require.NoError(t, err)
	require.Equal(t, satclique.NameGophersat, b.Name())

	b, err = satclique.Lookup("none")
	require.NoError(t, err)
	require.Nil(t, b)

	_, err = satclique.Lookup("minisat")
	require.ErrorIs(t, err, satclique.ErrUnknownBackend)
}

func TestProbe_Trivial(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	for _, b := range backends {
		q, err := b.NewQuery(g, g.Vertices())
		require.NoError(t, err)

		out, clique, err := q.Probe(context.Background(), 0)
		require.NoError(t, err, b.Name())
		require.Equal(t, satclique.Sat, out)
		require.Empty(t, clique)

		out, _, err = q.Probe(context.Background(), 4)
		require.NoError(t, err)
		require.Equal(t, satclique.Unsat, out, b.Name())

		q.Close()
		_, _, err = q.Probe(context.Background(), 1)
		require.ErrorIs(t, err, satclique.ErrClosed)
	}
}

func TestProbe_EmptyCandidates(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)

	for _, b := range backends {
		q, err := b.NewQuery(g, nil)
		require.NoError(t, err)
		out, _, err := q.Probe(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, satclique.Unsat, out, b.Name())
		q.Close()
	}
}

// TestProbe_Ladder walks k upward on one query, the way the search does,
// and checks the threshold matches the exact clique number.
func TestProbe_Ladder(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(18, 0.55))
		require.NoError(t, err)
		omega := oracle.CliqueNumber(g)

		for _, b := range backends {
			q, err := b.NewQuery(g, g.Vertices())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for k := 1; k <= omega+1; k++ {
				out, clique, err := q.Probe(ctx, k)
				require.NoError(t, err)
				if k <= omega {
					require.Equal(t, satclique.Sat, out, "%s seed=%d k=%d", b.Name(), seed, k)
					require.GreaterOrEqual(t, len(clique), k)
					require.NoError(t, core.ValidateClique(g, clique))
					require.IsIncreasing(t, clique)
				} else {
					require.Equal(t, satclique.Unsat, out, "%s seed=%d k=%d", b.Name(), seed, k)
				}
			}
			cancel()
			q.Close()
		}
	}
}

func TestProbe_Subset(t *testing.T) {
	// K4 on {0,1,2,3} and K3 on {4,5,6}; probing only the triangle.
	g, err := builder.BuildGraph(nil, builder.Complete(4), builder.Complete(3))
	require.NoError(t, err)

	for _, b := range backends {
		q, err := b.NewQuery(g, []int{6, 4, 5})
		require.NoError(t, err)

		out, clique, err := q.Probe(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, satclique.Sat, out, b.Name())
		require.Equal(t, []int{4, 5, 6}, clique)

		q.Close()
	}
}

func TestProbe_ExpiredContext(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, b := range backends {
		q, err := b.NewQuery(g, g.Vertices())
		require.NoError(t, err)
		out, _, err := q.Probe(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, satclique.Unknown, out, b.Name())
		q.Close()
	}
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "SAT", satclique.Sat.String())
	require.Equal(t, "UNSAT", satclique.Unsat.String())
	require.Equal(t, "UNKNOWN", satclique.Unknown.String())
}
