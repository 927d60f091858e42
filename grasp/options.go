package grasp

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cliquesat/monitor"
)

var (
	// ErrNilGraph is returned when Solve receives a nil graph.
	ErrNilGraph = errors.New("grasp: nil graph")

	// ErrInvalidAlpha is returned when Alpha is outside [0,1].
	ErrInvalidAlpha = errors.New("grasp: alpha must be in [0,1]")

	// ErrInvalidOptions is returned for negative limits.
	ErrInvalidOptions = errors.New("grasp: invalid options")
)

// Defaults used by DefaultOptions and for zero-valued fields.
const (
	DefaultAlpha            = 0.3
	DefaultMaxIterations    = 1000
	DefaultTimeLimit        = 180 * time.Second
	DefaultMaxNoImprovement = 100
	// DefaultSearchIntensity scales LocalSearchMoves with the order: moves = intensity·n.
	DefaultSearchIntensity = 3
	// tabuTenure is how many moves a dropped vertex stays out of plateau swaps.
	tabuTenure = 7
)

// Options configures Solve.
type Options struct {
	// Alpha in [0,1]: 0 is pure greedy, 1 picks uniformly among all candidates.
	Alpha float64
	// MaxIterations bounds the number of construction+search rounds; 0 means DefaultMaxIterations.
	MaxIterations int
	// TimeLimit bounds wall time; 0 means no limit besides ctx.
	TimeLimit time.Duration
	// Seed drives the RCL picks; 0 selects the default seed 1.
	Seed int64
	// MaxNoImprovement stops after this many consecutive iterations without a
	// strictly larger clique; 0 disables the check.
	MaxNoImprovement int
	// LocalSearchMoves bounds moves per iteration. 0 derives it from the
	// order: SearchIntensity·n.
	LocalSearchMoves int
	// SearchIntensity scales the derived move budget; 0 means DefaultSearchIntensity.
	SearchIntensity int

	Monitor *monitor.Monitor
	Logger  *slog.Logger
}

// DefaultOptions returns the standalone defaults.
func DefaultOptions() Options {
	return Options{
		Alpha:            DefaultAlpha,
		MaxIterations:    DefaultMaxIterations,
		TimeLimit:        DefaultTimeLimit,
		MaxNoImprovement: DefaultMaxNoImprovement,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Alpha < 0 || o.Alpha > 1 || o.Alpha != o.Alpha {
		return fmt.Errorf("%w: got %v", ErrInvalidAlpha, o.Alpha)
	}
	switch {
	case o.MaxIterations < 0:
		return fmt.Errorf("%w: MaxIterations=%d", ErrInvalidOptions, o.MaxIterations)
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: TimeLimit=%s", ErrInvalidOptions, o.TimeLimit)
	case o.MaxNoImprovement < 0:
		return fmt.Errorf("%w: MaxNoImprovement=%d", ErrInvalidOptions, o.MaxNoImprovement)
	case o.LocalSearchMoves < 0:
		return fmt.Errorf("%w: LocalSearchMoves=%d", ErrInvalidOptions, o.LocalSearchMoves)
	case o.SearchIntensity < 0:
		return fmt.Errorf("%w: SearchIntensity=%d", ErrInvalidOptions, o.SearchIntensity)
	}

	return nil
}

func (o Options) maxIterations() int {
	if o.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

func (o Options) moves(n int) int {
	if o.LocalSearchMoves > 0 {
		return o.LocalSearchMoves
	}
	if o.SearchIntensity > 0 {
		return o.SearchIntensity * n
	}
	return DefaultSearchIntensity * n
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
