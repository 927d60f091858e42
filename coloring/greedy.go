package coloring

import (
	"sort"

	"github.com/katalvlaran/cliquesat/core"
)

// Assignment is a proper coloring of a candidate set.
// Vertices and Colors are parallel; colors are 1-based.
type Assignment struct {
	Vertices []int
	Colors   []int
	K        int
}

// Bound returns the number of colors used, an upper bound on the clique
// number of the colored set.
func (a Assignment) Bound() int { return a.K }

// Classes returns the color classes, class c-1 holding the vertices of color c
// in coloring order.
func (a Assignment) Classes() [][]int {
	out := make([][]int, a.K)
	for i, v := range a.Vertices {
		out[a.Colors[i]-1] = append(out[a.Colors[i]-1], v)
	}

	return out
}

// BranchOrder returns the colored vertices sorted by color ascending and,
// inside a color, by degree ascending then id descending, together with the
// matching colors. Scanning the result from the end visits the highest color
// first, then higher degree, then lowest id.
func (a Assignment) BranchOrder(g *core.Graph) ([]int, []int) {
	idx := make([]int, len(a.Vertices))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool {
		i, j := idx[x], idx[y]
		if a.Colors[i] != a.Colors[j] {
			return a.Colors[i] < a.Colors[j]
		}
		di, dj := g.Degree(a.Vertices[i]), g.Degree(a.Vertices[j])
		if di != dj {
			return di < dj
		}
		return a.Vertices[i] > a.Vertices[j]
	})

	order := make([]int, len(idx))
	colors := make([]int, len(idx))
	for k, i := range idx {
		order[k] = a.Vertices[i]
		colors[k] = a.Colors[i]
	}

	return order, colors
}

// Colorer performs repeated greedy colorings on one graph, reusing its class
// bitsets between calls. It is not goroutine-safe.
type Colorer struct {
	g       *core.Graph
	classes []core.Bitset
}

// NewColorer returns a Colorer bound to g.
func NewColorer(g *core.Graph) *Colorer {
	return &Colorer{g: g}
}

// Color greedily colors cand in the given order.
// The returned Assignment owns fresh slices; scratch state is reset.
func (c *Colorer) Color(cand []int) Assignment {
	var (
		a    = Assignment{Vertices: make([]int, len(cand)), Colors: make([]int, len(cand))}
		k    int
		i, v int
		col  int
	)
	copy(a.Vertices, cand)
	for i, v = range cand {
		row := c.g.Row(v)
		for col = 0; col < k; col++ {
			if !c.classes[col].Intersects(row) {
				break
			}
		}
		if col == k {
			if k == len(c.classes) {
				c.classes = append(c.classes, core.NewBitset(c.g.Order()))
			}
			k++
		}
		c.classes[col].Add(v)
		a.Colors[i] = col + 1
	}
	for col = 0; col < k; col++ {
		c.classes[col].Clear()
	}
	a.K = k

	return a
}

// Greedy colors cand in the given order with a throwaway Colorer.
func Greedy(g *core.Graph, cand []int) Assignment {
	return NewColorer(g).Color(cand)
}

// Bound returns the greedy coloring bound of cand.
func Bound(g *core.Graph, cand []int) int {
	return Greedy(g, cand).K
}
