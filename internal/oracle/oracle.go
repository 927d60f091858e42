// Package oracle computes reference clique answers with gonum's
// Bron–Kerbosch enumeration. It exists so solver tests can compare against an
// independent implementation; it is exponential and meant for small graphs.
package oracle

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/cliquesat/core"
)

// MaximalCliques returns every maximal clique of g, each sorted ascending,
// the list sorted by size descending then lexicographically.
func MaximalCliques(g *core.Graph) [][]int {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	raw := topo.BronKerbosch(ug)
	out := make([][]int, 0, len(raw))
	for _, c := range raw {
		vs := make([]int, len(c))
		for i, nd := range c {
			vs[i] = int(nd.ID())
		}
		sort.Ints(vs)
		out = append(out, vs)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})

	return out
}

// MaximumCliques returns all cliques of maximum size.
func MaximumCliques(g *core.Graph) [][]int {
	all := MaximalCliques(g)
	if len(all) == 0 {
		return nil
	}
	w := len(all[0])
	i := 0
	for i < len(all) && len(all[i]) == w {
		i++
	}

	return all[:i]
}

// CliqueNumber returns ω(g); 0 for the empty graph.
func CliqueNumber(g *core.Graph) int {
	if g.Order() == 0 {
		return 0
	}
	best := MaximumCliques(g)
	if len(best) == 0 {
		return 1
	}

	return len(best[0])
}

// CliqueNumberWithin returns ω of the subgraph induced by vs.
func CliqueNumberWithin(g *core.Graph, vs []int) int {
	if len(vs) == 0 {
		return 0
	}
	view, err := core.InducedSubgraph(g, vs)
	if err != nil {
		return 0
	}
	h, err := view.ToGraph()
	if err != nil {
		return 0
	}

	return CliqueNumber(h)
}
