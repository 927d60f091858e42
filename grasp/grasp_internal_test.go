package grasp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquesat/core"
)

func TestRCLSize(t *testing.T) {
	tests := []struct {
		alpha float64
		n     int
		want  int
	}{
		{0, 0, 0},
		{0.5, 1, 1},
		{0, 10, 1},
		{1, 5, 5},
		{0.3, 11, 4},
		{0.99, 3, 2},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, rclSize(tc.alpha, tc.n), "alpha=%v n=%d", tc.alpha, tc.n)
	}
}

func TestRNGFromSeed_ZeroIsDefault(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
	require.Zero(t, rclPick(nil, 1), "size 1 never touches the stream")
}

func TestConstruct_GreedyIsMaximal(t *testing.T) {
	// K4 on 0..3 and a pendant 4 on 0.
	g, err := core.NewGraph(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {0, 4}})
	require.NoError(t, err)

	b := newBuilder(g, 0, nil)
	require.Equal(t, []int{0, 1, 2, 3}, b.construct())
	require.Equal(t, []int{0, 1, 2, 3}, b.construct(), "scratch reuse")
}

func TestImprove_Swap12ThenAdd(t *testing.T) {
	g, err := core.NewGraph(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {0, 4}})
	require.NoError(t, err)

	im := newImprover(g)
	got, moves := im.improve([]int{0, 4}, 100)
	require.Equal(t, []int{0, 1, 2, 3}, got)
	require.Equal(t, 2, moves)
}

func TestImprove_PlateauKeepsSize(t *testing.T) {
	// C5: every maximal clique is an edge, plateau swaps walk around the cycle.
	g, err := core.NewGraph(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)

	im := newImprover(g)
	got, moves := im.improve([]int{0, 1}, 20)
	require.Len(t, got, 2)
	require.True(t, core.IsClique(g, got))
	require.LessOrEqual(t, moves, 20)
}

func TestImprove_RespectsBudget(t *testing.T) {
	g, err := core.NewGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	im := newImprover(g)
	got, moves := im.improve([]int{2}, 1)
	require.Equal(t, 1, moves)
	require.Len(t, got, 2)
}
