package satclique

import "github.com/katalvlaran/cliquesat/core"

// Encoding is the solver-independent form of a candidate set.
// Variable i (0-based) stands for Vertices[i]; NonEdges lists local pairs
// i < j that are not adjacent, in lexicographic order.
type Encoding struct {
	Vertices []int
	NonEdges [][2]int
}

// Order returns the number of variables.
func (e Encoding) Order() int { return len(e.Vertices) }

// Encode builds the pairwise exclusion list for cand.
//
// Complexity: O(|cand|²) adjacency tests.
func Encode(g *core.Graph, cand []int) Encoding {
	enc := Encoding{Vertices: make([]int, len(cand))}
	copy(enc.Vertices, cand)

	var i, j int
	for i = 0; i < len(cand); i++ {
		row := g.Row(cand[i])
		for j = i + 1; j < len(cand); j++ {
			if !row.Has(cand[j]) {
				enc.NonEdges = append(enc.NonEdges, [2]int{i, j})
			}
		}
	}

	return enc
}
