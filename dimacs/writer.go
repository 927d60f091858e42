package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cliquesat/core"
)

// Write encodes g as "p edge" DIMACS with 1-based endpoints, each edge once
// in lexicographic order. Comment lines are emitted first; embedded newlines
// split into several comment lines.
func Write(w io.Writer, g *core.Graph, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			if _, err := fmt.Fprintf(bw, "c %s\n", line); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", g.Order(), g.Size()); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e[0]+1, e[1]+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
