// Package core_test verifies that a built Graph tolerates concurrent readers.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/cliquesat/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs many goroutines querying the same graph;
// run with -race to catch any hidden mutation.
func TestConcurrentReaders(t *testing.T) {
	const n = 120
	edges := make([][2]int, 0, n*n/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if (u+v)%3 != 0 {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	counts := make([]int, workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			var c int
			for u := 0; u < n; u++ {
				for _, v := range g.Neighbors(u) {
					if g.IsAdjacent(v, u) {
						c++
					}
				}
				c -= g.Row(u).Count()
			}
			counts[id] = c
		}(w)
	}
	wg.Wait()

	for _, c := range counts {
		require.Zero(t, c)
	}
}
