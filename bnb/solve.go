// Package bnb - exact entrypoint.
package bnb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cliquesat/coloring"
	"github.com/katalvlaran/cliquesat/core"
	"github.com/katalvlaran/cliquesat/grasp"
	"github.com/katalvlaran/cliquesat/monitor"
	"github.com/katalvlaran/cliquesat/reduce"
)

// Solve finds a maximum clique of g, or the best clique found before the
// time limit or ctx ends the run.
//
// Errors: ErrNilGraph, ErrInvalidOptions (wrapping the field), and the fatal
// ErrInvariantViolation or satclique.ErrInvalidModel. Timeouts are reported
// through Result.Status, never as errors.
func Solve(ctx context.Context, g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	e := newEngine(ctx, g, opts)
	if err := e.run(); err != nil {
		return Result{}, err
	}

	return e.result(), nil
}

func (e *engine) run() error {
	defer func() {
		e.stats.Elapsed = time.Since(e.start)
		e.enter(PhaseDone)
	}()

	// INIT
	e.enter(PhaseInit)
	all := e.g.Vertices()
	if err := e.record(GreedyClique(e.g, all)); err != nil {
		return err
	}
	if e.opts.WarmStart != nil && !e.stopped {
		warm, err := grasp.Solve(e.ctx, e.g, *e.opts.WarmStart)
		if err != nil {
			return fmt.Errorf("bnb: warm start: %w", err)
		}
		if err = e.record(warm.Clique); err != nil {
			return err
		}
		e.log.Debug("bnb: warm start", slog.Int("size", warm.Size), slog.Int("iterations", warm.Iterations))
	}

	// PREPROCESS
	e.enter(PhasePreprocess)
	red := reduce.ByDegree(e.g, all, len(e.best), e.best)
	e.stats.PreprocessRemoved += len(red.Removed)
	p := coloring.InitialOrder(e.g, red.Kept, e.opts.Ordering)
	e.log.Debug("bnb: preprocessed",
		slog.Int("order", e.g.Order()),
		slog.Int("kept", len(red.Kept)),
		slog.Int("rounds", red.Rounds),
		slog.Int("incumbent", len(e.best)))

	// Search; the root is re-entered while it keeps shrinking.
	e.enter(PhaseBound)
	for restart := true; restart && !e.stopped; {
		var err error
		p, restart, err = e.search(p)
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *engine) result() Result {
	res := Result{
		Clique: e.best,
		Size:   len(e.best),
		Status: Optimal,
		Stats:  e.stats,
	}
	if res.Clique == nil {
		res.Clique = []int{}
	}
	if e.stopped {
		res.Status = Timeout
		if est, ok := monitor.EstimateExact(e.stats.Nodes, e.stats.Elapsed, e.g.Order(), len(e.best)); ok {
			res.Estimate = &est
		}
	}
	final := e.snapshot()
	final.Elapsed = e.stats.Elapsed
	e.mon.Final(final)
	e.log.Debug("bnb: done",
		slog.String("status", res.Status.String()),
		slog.Int("size", res.Size),
		slog.Int64("nodes", e.stats.Nodes),
		slog.Duration("elapsed", e.stats.Elapsed))

	return res
}
