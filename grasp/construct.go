package grasp

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/cliquesat/core"
)

// builder holds the scratch state of the construction stage.
type builder struct {
	g     *core.Graph
	alpha float64
	rng   *rand.Rand

	cand core.Bitset
	list []int
	deg  []int
}

func newBuilder(g *core.Graph, alpha float64, rng *rand.Rand) *builder {
	return &builder{
		g:     g,
		alpha: alpha,
		rng:   rng,
		cand:  core.NewBitset(g.Order()),
		deg:   make([]int, g.Order()),
	}
}

// rclSize is 1+⌊α·(len-1)⌋, clamped to [1,len].
func rclSize(alpha float64, n int) int {
	if n <= 1 {
		return n
	}
	k := 1 + int(math.Floor(alpha*float64(n-1)))
	if k > n {
		k = n
	}

	return k
}

// construct builds one maximal clique. The returned slice is fresh.
func (b *builder) construct() []int {
	var (
		clique []int
		v      int
	)
	for v = 0; v < b.g.Order(); v++ {
		b.cand.Add(v)
	}
	for !b.cand.Empty() {
		b.list = b.cand.AppendTo(b.list[:0])
		for _, u := range b.list {
			b.deg[u] = b.g.DegreeWithin(u, b.cand)
		}
		sort.SliceStable(b.list, func(i, j int) bool {
			x, y := b.list[i], b.list[j]
			if b.deg[x] != b.deg[y] {
				return b.deg[x] > b.deg[y]
			}
			return x < y
		})

		pick := b.list[rclPick(b.rng, rclSize(b.alpha, len(b.list)))]
		clique = append(clique, pick)
		b.cand.Remove(pick)
		b.cand.And(b.g.Row(pick))
	}

	return clique
}
