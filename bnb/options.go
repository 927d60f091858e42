package bnb

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cliquesat/coloring"
	"github.com/katalvlaran/cliquesat/grasp"
	"github.com/katalvlaran/cliquesat/monitor"
	"github.com/katalvlaran/cliquesat/satclique"
)

var (
	// ErrNilGraph is returned when Solve receives a nil graph.
	ErrNilGraph = errors.New("bnb: nil graph")

	// ErrInvalidOptions is returned for inconsistent Options.
	ErrInvalidOptions = errors.New("bnb: invalid options")

	// ErrInvariantViolation reports an incumbent that is not a clique.
	// It indicates a defect and aborts the search.
	ErrInvariantViolation = errors.New("bnb: invariant violation")
)

// Defaults used by DefaultOptions and for zero-valued fields.
const (
	DefaultTimeLimit        = 600 * time.Second
	DefaultCheckEvery       = 1024
	DefaultSATMinCandidates = 24
	DefaultSATMaxCandidates = 128
	DefaultSATQueryTimeout  = 5 * time.Second
)

// Options configures Solve. The zero value runs without a time limit and
// without SAT probing.
type Options struct {
	// TimeLimit bounds wall time; 0 means no limit besides ctx.
	TimeLimit time.Duration
	// CheckEvery is the node interval between deadline polls; 0 means DefaultCheckEvery.
	CheckEvery int

	// SAT is the probing backend; nil disables SAT_PROBE.
	SAT satclique.Backend
	// SATMinCandidates and SATMaxCandidates bound |P| for a probe, inclusive.
	SATMinCandidates int
	SATMaxCandidates int
	// SATQueryTimeout caps one probe; 0 leaves only the run deadline.
	SATQueryTimeout time.Duration

	// Ordering arranges the root candidates before the first coloring.
	Ordering coloring.Ordering
	// WarmStart, when set, runs GRASP before the search to raise the incumbent.
	WarmStart *grasp.Options

	Monitor *monitor.Monitor
	Logger  *slog.Logger
}

// DefaultOptions returns the standalone defaults with the gini backend.
func DefaultOptions() Options {
	return Options{
		TimeLimit:        DefaultTimeLimit,
		CheckEvery:       DefaultCheckEvery,
		SAT:              satclique.Gini{},
		SATMinCandidates: DefaultSATMinCandidates,
		SATMaxCandidates: DefaultSATMaxCandidates,
		SATQueryTimeout:  DefaultSATQueryTimeout,
		Ordering:         coloring.DegreeDesc,
	}
}

// Validate reports the first inconsistent field.
func (o Options) Validate() error {
	switch {
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: TimeLimit=%s", ErrInvalidOptions, o.TimeLimit)
	case o.CheckEvery < 0:
		return fmt.Errorf("%w: CheckEvery=%d", ErrInvalidOptions, o.CheckEvery)
	case o.SATMinCandidates < 0 || o.SATMaxCandidates < 0:
		return fmt.Errorf("%w: negative SAT window [%d,%d]", ErrInvalidOptions, o.SATMinCandidates, o.SATMaxCandidates)
	case o.SAT != nil && o.SATMaxCandidates < o.SATMinCandidates:
		return fmt.Errorf("%w: empty SAT window [%d,%d]", ErrInvalidOptions, o.SATMinCandidates, o.SATMaxCandidates)
	case o.SATQueryTimeout < 0:
		return fmt.Errorf("%w: SATQueryTimeout=%s", ErrInvalidOptions, o.SATQueryTimeout)
	case o.Ordering < coloring.DegreeDesc || o.Ordering > coloring.Natural:
		return fmt.Errorf("%w: Ordering=%s", ErrInvalidOptions, o.Ordering)
	}
	if o.WarmStart != nil {
		if err := o.WarmStart.Validate(); err != nil {
			return fmt.Errorf("%w: warm start: %w", ErrInvalidOptions, err)
		}
	}

	return nil
}

func (o Options) checkEvery() int {
	if o.CheckEvery == 0 {
		return DefaultCheckEvery
	}
	return o.CheckEvery
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
