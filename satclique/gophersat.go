package satclique

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/cliquesat/core"
)

// MaxGophersatBackground caps the gophersat solves still running after their
// probe gave up on ctx.
const MaxGophersatBackground = 2

// gophersatSlots holds one token per gophersat solve running in a goroutine.
var gophersatSlots = make(chan struct{}, MaxGophersatBackground)

// Gophersat is the rebuild backend built on github.com/crillab/gophersat.
// Each probe parses a fresh pseudo-boolean problem; only the pairwise
// clauses are shared between probes of one query.
//
// gophersat's Solve cannot be interrupted. With a ctx that can never be
// canceled the probe solves synchronously. Otherwise the solve runs in a
// goroutine holding one of MaxGophersatBackground process-wide slots; when
// ctx ends first the probe answers Unknown and the goroutine keeps its slot
// until Solve returns. While every slot is taken, probes answer Unknown
// without starting a solve, so abandoned solves never pile up.
type Gophersat struct{}

// Name implements Backend.
func (Gophersat) Name() string { return NameGophersat }

// NewQuery implements Backend.
func (Gophersat) NewQuery(g *core.Graph, cand []int) (Query, error) {
	enc := Encode(g, cand)
	q := &gophersatQuery{
		g:     g,
		enc:   enc,
		lits:  make([]int, enc.Order()),
		pairs: make([]solver.PBConstr, len(enc.NonEdges)),
	}
	for i := range q.lits {
		q.lits[i] = i + 1 // DIMACS numbering
	}
	for i, p := range enc.NonEdges {
		q.pairs[i] = solver.PropClause(-(p[0] + 1), -(p[1] + 1))
	}

	return q, nil
}

type gophersatQuery struct {
	g      *core.Graph
	enc    Encoding
	lits   []int
	pairs  []solver.PBConstr
	closed bool
}

type gophersatAnswer struct {
	status solver.Status
	model  []bool
}

// Probe implements Query.
func (q *gophersatQuery) Probe(ctx context.Context, k int) (Outcome, []int, error) {
	if q.closed {
		return Unknown, nil, ErrClosed
	}
	if out, ok := trivial(k, q.enc.Order()); ok {
		return out, nil, nil
	}
	if ctx.Err() != nil {
		return Unknown, nil, nil
	}

	constrs := make([]solver.PBConstr, 0, len(q.pairs)+1)
	constrs = append(constrs, solver.AtLeast(q.lits, k))
	constrs = append(constrs, q.pairs...)
	s := solver.New(solver.ParsePBConstrs(constrs))

	var ans gophersatAnswer
	if ctx.Done() == nil {
		ans = runGophersat(s)
	} else {
		select {
		case gophersatSlots <- struct{}{}:
		default:
			return Unknown, nil, nil
		}
		done := make(chan gophersatAnswer, 1)
		go func() {
			res := runGophersat(s)
			<-gophersatSlots
			done <- res
		}()

		select {
		case ans = <-done:
		case <-ctx.Done():
			return Unknown, nil, nil
		}
	}

	switch ans.status {
	case solver.Sat:
		var selected []int
		for i, on := range ans.model {
			if on && i < q.enc.Order() {
				selected = append(selected, i)
			}
		}
		clique, err := checkModel(q.g, q.enc, selected, k)
		if err != nil {
			return Unknown, nil, err
		}
		return Sat, clique, nil
	case solver.Unsat:
		return Unsat, nil, nil
	default:
		return Unknown, nil, nil
	}
}

func runGophersat(s *solver.Solver) gophersatAnswer {
	ans := gophersatAnswer{status: s.Solve()}
	if ans.status == solver.Sat {
		ans.model = s.Model()
	}

	return ans
}

// Close implements Query.
func (q *gophersatQuery) Close() {
	q.closed = true
	q.pairs = nil
}
