package satclique

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquesat/core"
)

func k4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	return g
}

// TestGophersat_SlotsExhausted checks that a cancellable probe never starts a
// solve while every background slot is held.
func TestGophersat_SlotsExhausted(t *testing.T) {
	g := k4(t)
	q, err := Gophersat{}.NewQuery(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i := 0; i < MaxGophersatBackground; i++ {
		gophersatSlots <- struct{}{}
	}
	out, clique, err := q.Probe(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, Unknown, out)
	require.Nil(t, clique)
	require.Len(t, gophersatSlots, MaxGophersatBackground)

	// Uncancellable contexts solve in the calling goroutine.
	out, clique, err = q.Probe(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, Sat, out)
	require.Equal(t, []int{0, 1, 2, 3}, clique)

	for i := 0; i < MaxGophersatBackground; i++ {
		<-gophersatSlots
	}
	out, _, err = q.Probe(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, Sat, out)
	require.Empty(t, gophersatSlots, "slot released once the solve returned")
}
