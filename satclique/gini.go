package satclique

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/cliquesat/core"
)

const (
	giniSat   = 1
	giniUnsat = -1
)

// pollInterval is how often a cancellable probe without a deadline checks ctx.
const pollInterval = 2 * time.Millisecond

// Gini is the incremental backend built on github.com/go-air/gini.
type Gini struct{}

// Name implements Backend.
func (Gini) Name() string { return NameGini }

// NewQuery implements Backend. Pairwise clauses go straight to the solver;
// the cardinality network lives in a logic circuit and is emitted lazily.
func (Gini) NewQuery(g *core.Graph, cand []int) (Query, error) {
	enc := Encode(g, cand)
	q := &giniQuery{
		g:    g,
		enc:  enc,
		c:    logic.NewCCap(enc.Order()),
		s:    gini.New(),
		lits: make([]z.Lit, enc.Order()),
	}
	for i := range q.lits {
		q.lits[i] = q.c.Lit()
	}
	for _, p := range enc.NonEdges {
		q.s.Add(q.lits[p[0]].Not())
		q.s.Add(q.lits[p[1]].Not())
		q.s.Add(0)
	}
	if enc.Order() > 0 {
		q.cs = q.c.CardSort(q.lits)
	}

	return q, nil
}

type giniQuery struct {
	g     *core.Graph
	enc   Encoding
	c     *logic.C
	s     *gini.Gini
	lits  []z.Lit
	cs    *logic.CardSort
	marks []int8

	// spent is set after an interrupted solve; later probes answer Unknown.
	spent  bool
	closed bool
}

// Probe implements Query.
func (q *giniQuery) Probe(ctx context.Context, k int) (Outcome, []int, error) {
	if q.closed {
		return Unknown, nil, ErrClosed
	}
	if out, ok := trivial(k, q.enc.Order()); ok {
		return out, nil, nil
	}
	if q.spent || ctx.Err() != nil {
		return Unknown, nil, nil
	}

	root := q.cs.Geq(k)
	q.marks, _ = q.c.CnfSince(q.s, q.marks, root)
	q.s.Assume(root)

	switch solve(ctx, q.s) {
	case giniSat:
		var selected []int
		maxVar := q.s.MaxVar()
		for i, m := range q.lits {
			if m.Var() <= maxVar && q.s.Value(m) {
				selected = append(selected, i)
			}
		}
		clique, err := checkModel(q.g, q.enc, selected, k)
		if err != nil {
			return Unknown, nil, err
		}
		return Sat, clique, nil
	case giniUnsat:
		return Unsat, nil, nil
	default:
		q.spent = true
		return Unknown, nil, nil
	}
}

// Close implements Query.
func (q *giniQuery) Close() {
	q.closed = true
	q.s, q.c, q.cs, q.marks = nil, nil, nil, nil
}

// solve runs the pending assumptions under the budget of ctx.
func solve(ctx context.Context, s *gini.Gini) int {
	if dl, ok := ctx.Deadline(); ok {
		return s.Try(time.Until(dl))
	}
	if ctx.Done() == nil {
		return s.Solve()
	}

	conn := s.GoSolve()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		if res, done := conn.Test(); done {
			return res
		}
		select {
		case <-ctx.Done():
			return conn.Stop()
		case <-tick.C:
		}
	}
}
