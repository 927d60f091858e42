package monitor

import (
	"fmt"
	"math"
	"time"
)

// Estimate projects how long a run that hit its time limit would need.
type Estimate struct {
	Method    string
	Rate      float64       // work units per second
	Done      int64         // work units completed
	Pending   float64       // projected work units still to do
	Elapsed   time.Duration // time already spent
	Remaining time.Duration // projected additional time
	Total     time.Duration // Elapsed + Remaining
	// Progress is the completed fraction in [0,1] when the total amount of
	// work is known (GRASP), and 0 otherwise.
	Progress float64
}

const (
	methodExact = "node exploration rate"
	methodGRASP = "iteration rate"
)

// EstimateExact projects the remaining search from the node rate: the
// remaining space is taken as nodes·max(1, order-best).
// ok is false when no nodes were explored or no time elapsed.
func EstimateExact(nodes int64, elapsed time.Duration, order, best int) (Estimate, bool) {
	r := perSecond(nodes, elapsed)
	if r == 0 {
		return Estimate{}, false
	}
	factor := order - best
	if factor < 1 {
		factor = 1
	}
	pending := float64(nodes) * float64(factor)

	return finish(Estimate{Method: methodExact, Rate: r, Done: nodes, Pending: pending, Elapsed: elapsed}), true
}

// EstimateGRASP projects the remaining iterations up to maxIterations.
// ok is false when no iteration finished or no time elapsed.
func EstimateGRASP(iterations int64, elapsed time.Duration, maxIterations int64) (Estimate, bool) {
	r := perSecond(iterations, elapsed)
	if r == 0 {
		return Estimate{}, false
	}
	pending := float64(maxIterations - iterations)
	if pending < 0 {
		pending = 0
	}
	e := Estimate{Method: methodGRASP, Rate: r, Done: iterations, Pending: pending, Elapsed: elapsed}
	if maxIterations > 0 {
		e.Progress = math.Min(1, float64(iterations)/float64(maxIterations))
	}

	return finish(e), true
}

func finish(e Estimate) Estimate {
	secs := e.Pending / e.Rate
	if secs > float64(math.MaxInt64)/float64(time.Second) {
		e.Remaining = time.Duration(math.MaxInt64)
	} else {
		e.Remaining = time.Duration(secs * float64(time.Second))
	}
	e.Total = e.Elapsed + e.Remaining
	if e.Total < e.Elapsed {
		e.Total = time.Duration(math.MaxInt64)
	}

	return e
}

// String renders the estimate for humans.
func (e Estimate) String() string {
	return fmt.Sprintf("remaining %s, total %s (%s: %.2f/s)",
		FormatDuration(e.Remaining), FormatDuration(e.Total), e.Method, e.Rate)
}

// FormatDuration prints d in the largest unit below it: s, min, h or d.
func FormatDuration(d time.Duration) string {
	s := d.Seconds()
	switch {
	case s < 60:
		return fmt.Sprintf("%.1fs", s)
	case s < 3600:
		return fmt.Sprintf("%.1fmin", s/60)
	case s < 86400:
		return fmt.Sprintf("%.1fh", s/3600)
	default:
		return fmt.Sprintf("%.1fd", s/86400)
	}
}
