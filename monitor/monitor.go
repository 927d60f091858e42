package monitor

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Config controls the periodic cadence.
type Config struct {
	// Every emits a periodic snapshot on every Every-th Tick (0 disables).
	Every int
	// Interval emits a periodic snapshot when this much time passed since the
	// last one (0 disables).
	Interval time.Duration
	// Silent turns periodic snapshots off; discoveries and Final still emit.
	Silent bool
}

// DefaultConfig logs every 1000 ticks or 30 seconds.
func DefaultConfig() Config {
	return Config{Every: 1000, Interval: 30 * time.Second}
}

// Monitor gates snapshots for one run. A nil *Monitor is valid and inert.
// It is not goroutine-safe; the solver goroutine owns it.
type Monitor struct {
	sink   Sink
	gate   *rate.Sometimes
	runID  uuid.UUID
	silent bool
}

// New returns a monitor writing to sink with a fresh run id.
// A nil sink yields a nil Monitor.
func New(cfg Config, sink Sink) *Monitor {
	if sink == nil {
		return nil
	}
	m := &Monitor{sink: sink, runID: uuid.New(), silent: cfg.Silent}
	if !cfg.Silent && (cfg.Every > 0 || cfg.Interval > 0) {
		m.gate = &rate.Sometimes{Every: cfg.Every, Interval: cfg.Interval}
	}

	return m
}

// RunID identifies the run in every snapshot.
func (m *Monitor) RunID() uuid.UUID {
	if m == nil {
		return uuid.Nil
	}

	return m.runID
}

// Tick counts one unit of work and, when the cadence gate opens, emits the
// snapshot built by fn. fn is not called otherwise.
func (m *Monitor) Tick(fn func() Snapshot) {
	if m == nil || m.gate == nil {
		return
	}
	m.gate.Do(func() {
		m.emit(fn(), Periodic)
	})
}

// Discovery emits s as an incumbent improvement.
func (m *Monitor) Discovery(s Snapshot) {
	if m == nil {
		return
	}
	m.emit(s, Discovery)
}

// Final emits s as the last snapshot of the run.
func (m *Monitor) Final(s Snapshot) {
	if m == nil {
		return
	}
	m.emit(s, Final)
}

func (m *Monitor) emit(s Snapshot, k Kind) {
	s.RunID = m.runID
	s.Kind = k
	if s.Throughput == 0 {
		s.Throughput = perSecond(s.Work(), s.Elapsed)
	}
	m.sink.Observe(s)
}
