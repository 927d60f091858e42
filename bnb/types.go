package bnb

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cliquesat/monitor"
)

// SolverName labels exact-solver snapshots.
const SolverName = "bnb"

// Phase is the state of the search machine.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePreprocess
	PhaseBound
	PhasePrune
	PhaseExpand
	PhaseSATProbe
	PhaseDone
)

var phaseNames = [...]string{"INIT", "PREPROCESS", "BOUND", "PRUNE", "EXPAND", "SAT_PROBE", "DONE"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Status is the terminal state of a run.
type Status int

const (
	// Optimal means the search space was exhausted; the clique is maximum.
	Optimal Status = iota
	// Timeout means the time limit or ctx ended the search first.
	Timeout
)

func (s Status) String() string {
	if s == Timeout {
		return "TIMEOUT"
	}
	return "OPTIMAL"
}

// MarshalText renders the status as OPTIMAL or TIMEOUT.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Stats are the counters of one run.
type Stats struct {
	Nodes             int64
	Prunes            int64
	SATQueries        int64
	SATSat            int64
	SATUnsat          int64
	SATUnknown        int64
	PreprocessRemoved int
	Discoveries       int
	MaxDepth          int
	Elapsed           time.Duration
}

// Result is the outcome of Solve.
type Result struct {
	Clique []int // sorted ascending
	Size   int
	Status Status
	Stats  Stats
	// Estimate projects the time to finish; set on Timeout when at least
	// one node was explored.
	Estimate *monitor.Estimate
}
