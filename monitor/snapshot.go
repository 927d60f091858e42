package monitor

import (
	"time"

	"github.com/google/uuid"
)

// Kind says why a snapshot was emitted.
type Kind int

const (
	// Periodic snapshots come from the cadence gate.
	Periodic Kind = iota
	// Discovery snapshots follow every incumbent improvement.
	Discovery
	// Final is emitted once when the solver returns.
	Final
)

// String returns the log name of k.
func (k Kind) String() string {
	switch k {
	case Discovery:
		return "discovery"
	case Final:
		return "final"
	default:
		return "periodic"
	}
}

// Snapshot is a point-in-time view of a run.
// Nodes is used by the exact solver, Iterations by GRASP.
type Snapshot struct {
	RunID        uuid.UUID
	Solver       string
	Kind         Kind
	Phase        string
	Elapsed      time.Duration
	Nodes        int64
	Iterations   int64
	Throughput   float64 // nodes or iterations per second
	BestSize     int
	BestVertices []int
	SATQueries   int64
	Prunes       int64
}

// Work returns Nodes for exact runs and Iterations otherwise.
func (s Snapshot) Work() int64 {
	if s.Nodes > 0 {
		return s.Nodes
	}

	return s.Iterations
}

// perSecond is work per second, 0 when no time has passed.
func perSecond(work int64, elapsed time.Duration) float64 {
	if work <= 0 || elapsed <= 0 {
		return 0
	}

	return float64(work) / elapsed.Seconds()
}
