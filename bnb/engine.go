// Package bnb - search engine.
//
// engine holds all state of one run. The recursion passes only the
// candidate slice; R, the incumbent and the counters live on the engine.
//
// Hot-path discipline:
//   - one Colorer reused across nodes (Color returns fresh slices);
//   - deadline polled every CheckEvery nodes, not per node;
//   - the snapshot closure is built once and only invoked by the monitor gate.
package bnb

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/katalvlaran/cliquesat/coloring"
	"github.com/katalvlaran/cliquesat/core"
	"github.com/katalvlaran/cliquesat/monitor"
	"github.com/katalvlaran/cliquesat/reduce"
	"github.com/katalvlaran/cliquesat/satclique"
)

type engine struct {
	// Configuration / policy
	g      *core.Graph
	opts   Options
	sat    satclique.Backend
	satMin int
	satMax int
	every  int

	// Time budget
	ctx     context.Context
	start   time.Time
	steps   int
	stopped bool

	// Observability
	log   *slog.Logger
	debug bool
	mon   *monitor.Monitor
	snap  func() monitor.Snapshot
	phase Phase

	// Search state
	colorer *coloring.Colorer
	r       []int // clique on the current path
	best    []int // incumbent, sorted
	stats   Stats
}

func newEngine(ctx context.Context, g *core.Graph, opts Options) *engine {
	e := &engine{
		g:       g,
		opts:    opts,
		sat:     opts.SAT,
		satMin:  opts.SATMinCandidates,
		satMax:  opts.SATMaxCandidates,
		every:   opts.checkEvery(),
		ctx:     ctx,
		start:   time.Now(),
		log:     opts.logger(),
		mon:     opts.Monitor,
		colorer: coloring.NewColorer(g),
		r:       make([]int, 0, g.MaxDegree()+1),
	}
	e.debug = e.log.Enabled(ctx, slog.LevelDebug)
	e.snap = e.snapshot

	return e
}

func (e *engine) snapshot() monitor.Snapshot {
	return monitor.Snapshot{
		Solver:       SolverName,
		Phase:        e.phase.String(),
		Elapsed:      time.Since(e.start),
		Nodes:        e.stats.Nodes,
		BestSize:     len(e.best),
		BestVertices: e.best,
		SATQueries:   e.stats.SATQueries,
		Prunes:       e.stats.Prunes,
	}
}

// enter records a coarse phase transition.
func (e *engine) enter(p Phase) {
	e.phase = p
	if e.debug {
		e.log.Debug("bnb: phase", slog.String("phase", p.String()), slog.Int("best", len(e.best)), slog.Int64("nodes", e.stats.Nodes))
	}
}

// poll reports whether the run must stop. Unless force is set, ctx is only
// consulted every e.every calls.
func (e *engine) poll(force bool) bool {
	if e.stopped {
		return true
	}
	e.steps++
	if !force && e.steps%e.every != 0 {
		return false
	}
	if e.ctx.Err() != nil {
		e.stopped = true
	}

	return e.stopped
}

// record installs c as the incumbent when strictly larger.
func (e *engine) record(c []int) error {
	if len(c) <= len(e.best) {
		return nil
	}
	clique := append([]int(nil), c...)
	sort.Ints(clique)
	if err := core.ValidateClique(e.g, clique); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	e.best = clique
	e.stats.Discoveries++
	if e.debug {
		e.log.Debug("bnb: new incumbent", slog.Int("size", len(clique)), slog.Int64("nodes", e.stats.Nodes))
	}
	e.mon.Discovery(e.snapshot())
	e.poll(true)

	return nil
}

// search explores the node (e.r, p). At the root it returns restart=true
// with the peeled remaining candidates after the incumbent grew.
func (e *engine) search(p []int) (rest []int, restart bool, err error) {
	e.stats.Nodes++
	if d := len(e.r); d > e.stats.MaxDepth {
		e.stats.MaxDepth = d
	}
	e.mon.Tick(e.snap)
	if e.poll(false) {
		return nil, false, nil
	}
	if len(p) == 0 {
		return nil, false, e.record(e.r)
	}

	// BOUND
	e.phase = PhaseBound
	a := e.colorer.Color(p)
	if len(e.r)+a.Bound() <= len(e.best) {
		e.phase = PhasePrune
		e.stats.Prunes++
		return nil, false, nil
	}

	// SAT_PROBE
	if e.sat != nil && len(p) >= e.satMin && len(p) <= e.satMax {
		closed, err := e.probe(p, a.Bound())
		if err != nil || closed || e.stopped {
			return nil, false, err
		}
	}

	// EXPAND
	e.phase = PhaseExpand
	var (
		order, colors = a.BranchOrder(e.g)
		root          = len(e.r) == 0
		i             int
	)
	for i = len(order) - 1; i >= 0; i-- {
		if e.stopped {
			return nil, false, nil
		}
		if len(e.r)+colors[i] <= len(e.best) {
			e.stats.Prunes++
			return nil, false, nil
		}

		v := order[i]
		row := e.g.Row(v)
		child := make([]int, 0, i)
		for _, u := range order[:i] {
			if row.Has(u) {
				child = append(child, u)
			}
		}

		before := len(e.best)
		e.r = append(e.r, v)
		_, _, err = e.search(child)
		e.r = e.r[:len(e.r)-1]
		if err != nil {
			return nil, false, err
		}

		if root && len(e.best) > before && i > 0 && !e.stopped {
			red := reduce.ByDegree(e.g, order[:i], len(e.best), e.best)
			e.stats.PreprocessRemoved += len(red.Removed)
			if e.debug {
				e.log.Debug("bnb: root re-reduced", slog.Int("kept", len(red.Kept)), slog.Int("removed", len(red.Removed)))
			}
			return red.Kept, true, nil
		}
	}

	return nil, false, nil
}

// probe runs the SAT ladder on p. closed means the node needs no expansion.
func (e *engine) probe(p []int, bound int) (closed bool, err error) {
	e.phase = PhaseSATProbe
	q, err := e.sat.NewQuery(e.g, p)
	if err != nil {
		return false, fmt.Errorf("bnb: %s query: %w", e.sat.Name(), err)
	}
	defer q.Close()

	for {
		k := len(e.best) - len(e.r) + 1
		if k > bound {
			return true, nil
		}
		if e.poll(true) {
			return false, nil
		}

		ctx, cancel := e.probeContext()
		out, clique, err := q.Probe(ctx, k)
		cancel()
		e.stats.SATQueries++
		if err != nil {
			return false, err
		}
		if e.debug {
			e.log.Debug("bnb: sat probe", slog.Int("candidates", len(p)), slog.Int("k", k), slog.String("outcome", out.String()))
		}

		switch out {
		case satclique.Sat:
			e.stats.SATSat++
			found := make([]int, 0, len(e.r)+len(clique))
			found = append(found, e.r...)
			found = append(found, clique...)
			if err = e.record(found); err != nil {
				return false, err
			}
		case satclique.Unsat:
			e.stats.SATUnsat++
			return true, nil
		default:
			e.stats.SATUnknown++
			return false, nil
		}
	}
}

func (e *engine) probeContext() (context.Context, context.CancelFunc) {
	if e.opts.SATQueryTimeout > 0 {
		return context.WithTimeout(e.ctx, e.opts.SATQueryTimeout)
	}
	return context.WithCancel(e.ctx)
}
