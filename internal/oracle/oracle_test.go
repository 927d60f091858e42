package oracle_test

import (
	"testing"

	"github.com/katalvlaran/cliquesat/builder"
	"github.com/katalvlaran/cliquesat/internal/oracle"
	"github.com/stretchr/testify/require"
)

func TestCliqueNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"K5", builder.Complete(5), 5},
		{"P10", builder.Path(10), 2},
		{"C5", builder.Cycle(5), 2},
		{"W6", builder.Wheel(6), 3},
		{"Isolated", builder.Empty(3), 1},
		{"K2,3,4", builder.CompleteMultipartite(2, 3, 4), 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.want, oracle.CliqueNumber(g))
		})
	}
}

func TestMaximumCliques_DisjointTriangles(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3), builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, oracle.MaximumCliques(g))
	require.Equal(t, 2, oracle.CliqueNumberWithin(g, []int{0, 1, 6, 7}))
}
