// Package grasp - heuristic entrypoint.
//
// Solve validates options, then alternates construction and local search
// until one of the stop conditions fires. The incumbent only changes on a
// strictly larger clique, so the first best clique found is kept.
package grasp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cliquesat/core"
	"github.com/katalvlaran/cliquesat/monitor"
)

// SolverName labels GRASP snapshots.
const SolverName = "grasp"

// StopReason says why Solve returned.
type StopReason int

const (
	StopIterations StopReason = iota
	StopTimeLimit
	StopCanceled
	StopStagnation
	StopBound // clique of MaxDegree+1 vertices found
	StopEmpty // graph had no vertices
)

var stopNames = [...]string{"iterations", "time_limit", "canceled", "stagnation", "bound", "empty"}

func (r StopReason) String() string {
	if r < 0 || int(r) >= len(stopNames) {
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
	return stopNames[r]
}

// Solution is a clique with the circumstances of its discovery.
type Solution struct {
	Clique    []int
	Alpha     float64
	Iteration int
	Elapsed   time.Duration
}

// Result is the outcome of Solve. Clique and Size mirror Best.
type Result struct {
	Best         Solution
	Clique       []int
	Size         int
	Elapsed      time.Duration
	Iterations   int
	Improvements int
	Moves        int64
	Stop         StopReason
	// Estimate projects the time to finish MaxIterations; set only when the
	// run stopped on the time limit or ctx after at least one iteration.
	Estimate *monitor.Estimate
}

// Solve runs GRASP on g. Every returned clique is valid; for n ≥ 1 it has at
// least one vertex. Time limits and cancellation are not errors.
func Solve(ctx context.Context, g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var (
		start   = time.Now()
		log     = opts.logger()
		maxIter = opts.maxIterations()
		moves   = opts.moves(g.Order())
		ceiling = g.MaxDegree() + 1
		res     Result
	)
	if g.Order() == 0 {
		res.Stop = StopEmpty
		res.Clique, res.Best.Clique = []int{}, []int{}
		return res, nil
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	var (
		b     = newBuilder(g, opts.Alpha, rngFromSeed(opts.Seed))
		im    = newImprover(g)
		noImp int
	)
	snap := func() monitor.Snapshot {
		return monitor.Snapshot{
			Solver:       SolverName,
			Phase:        "ITERATE",
			Elapsed:      time.Since(start),
			Iterations:   int64(res.Iterations),
			BestSize:     res.Size,
			BestVertices: res.Clique,
		}
	}

	res.Stop = StopIterations
	for res.Iterations < maxIter {
		if err := ctx.Err(); err != nil {
			res.Stop = stopFor(err)
			break
		}

		clique, spent := im.improve(b.construct(), moves)
		res.Iterations++
		res.Moves += int64(spent)

		if len(clique) > res.Size {
			if err := core.ValidateClique(g, clique); err != nil {
				return Result{}, fmt.Errorf("grasp: iteration %d: %w", res.Iterations, err)
			}
			res.Best = Solution{Clique: clique, Alpha: opts.Alpha, Iteration: res.Iterations, Elapsed: time.Since(start)}
			res.Clique, res.Size = clique, len(clique)
			res.Improvements++
			noImp = 0
			log.Debug("grasp: improvement", slog.Int("iteration", res.Iterations), slog.Int("size", res.Size))
			opts.Monitor.Discovery(snap())
		} else {
			noImp++
		}
		opts.Monitor.Tick(snap)

		if res.Size >= ceiling {
			res.Stop = StopBound
			break
		}
		if opts.MaxNoImprovement > 0 && noImp >= opts.MaxNoImprovement {
			res.Stop = StopStagnation
			break
		}
	}

	res.Elapsed = time.Since(start)
	if res.Stop == StopTimeLimit || res.Stop == StopCanceled {
		if est, ok := monitor.EstimateGRASP(int64(res.Iterations), res.Elapsed, int64(maxIter)); ok {
			res.Estimate = &est
		}
	}
	log.Debug("grasp: done",
		slog.String("stop", res.Stop.String()),
		slog.Int("iterations", res.Iterations),
		slog.Int("size", res.Size),
		slog.Duration("elapsed", res.Elapsed))
	final := snap()
	final.Phase = "DONE"
	opts.Monitor.Final(final)

	return res, nil
}

func stopFor(err error) StopReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return StopTimeLimit
	}
	return StopCanceled
}
