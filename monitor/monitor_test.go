package monitor_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquesat/monitor"
)

// recorder collects snapshots; safe for the Async goroutine.
type recorder struct {
	mu   sync.Mutex
	seen []monitor.Snapshot
}

func (r *recorder) Observe(s monitor.Snapshot) {
	r.mu.Lock()
	r.seen = append(r.seen, s)
	r.mu.Unlock()
}

func (r *recorder) all() []monitor.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]monitor.Snapshot(nil), r.seen...)
}

func TestMonitor_NilIsInert(t *testing.T) {
	var m *monitor.Monitor
	require.NotPanics(t, func() {
		m.Tick(func() monitor.Snapshot { t.Fatal("must not build"); return monitor.Snapshot{} })
		m.Discovery(monitor.Snapshot{})
		m.Final(monitor.Snapshot{})
	})
	require.Equal(t, uuid.Nil, m.RunID())
	require.Nil(t, monitor.New(monitor.DefaultConfig(), nil))
}

func TestMonitor_EveryN(t *testing.T) {
	rec := &recorder{}
	m := monitor.New(monitor.Config{Every: 10}, rec)

	built := 0
	for i := 1; i <= 35; i++ {
		n := int64(i)
		m.Tick(func() monitor.Snapshot {
			built++
			return monitor.Snapshot{Solver: "bnb", Nodes: n, Elapsed: time.Second}
		})
	}
	// Calls 1, 11, 21, 31 open the gate.
	require.Equal(t, 4, built)
	seen := rec.all()
	require.Len(t, seen, 4)
	for _, s := range seen {
		require.Equal(t, monitor.Periodic, s.Kind)
		require.Equal(t, m.RunID(), s.RunID)
		require.InDelta(t, float64(s.Nodes), s.Throughput, 1e-9)
	}
	require.Equal(t, []int64{1, 11, 21, 31}, []int64{seen[0].Nodes, seen[1].Nodes, seen[2].Nodes, seen[3].Nodes})
}

func TestMonitor_SilentKeepsEvents(t *testing.T) {
	rec := &recorder{}
	m := monitor.New(monitor.Config{Every: 1, Silent: true}, rec)
	for i := 0; i < 100; i++ {
		m.Tick(func() monitor.Snapshot { return monitor.Snapshot{} })
	}
	m.Discovery(monitor.Snapshot{BestSize: 3})
	m.Final(monitor.Snapshot{BestSize: 3})

	seen := rec.all()
	require.Len(t, seen, 2)
	require.Equal(t, monitor.Discovery, seen[0].Kind)
	require.Equal(t, monitor.Final, seen[1].Kind)
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	monitor.Multi{a, nil, b, monitor.Nop{}}.Observe(monitor.Snapshot{BestSize: 2})
	require.Len(t, a.all(), 1)
	require.Len(t, b.all(), 1)

	var got int
	monitor.SinkFunc(func(s monitor.Snapshot) { got = s.BestSize }).Observe(monitor.Snapshot{BestSize: 7})
	require.Equal(t, 7, got)
}

func TestAsync_DeliversAndDrains(t *testing.T) {
	rec := &recorder{}
	a := monitor.NewAsync(rec, 4)

	verts := []int{1, 2, 3}
	a.Observe(monitor.Snapshot{Kind: monitor.Discovery, BestVertices: verts})
	verts[0] = 99 // the queued copy must not change
	a.Observe(monitor.Snapshot{Kind: monitor.Final, BestSize: 3})
	a.Close()
	a.Close()

	seen := rec.all()
	require.Len(t, seen, 2)
	require.Equal(t, []int{1, 2, 3}, seen[0].BestVertices)
	require.Equal(t, monitor.Final, seen[1].Kind)
}

func TestAsync_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	var delivered int
	blocking := monitor.SinkFunc(func(monitor.Snapshot) {
		<-release
		delivered++
	})
	a := monitor.NewAsync(blocking, 1)

	for i := 0; i < 50; i++ {
		a.Observe(monitor.Snapshot{})
	}
	close(release)
	a.Close()

	require.Positive(t, a.Dropped())
	require.Equal(t, int64(50), a.Dropped()+int64(delivered))
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := monitor.NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))
	m := monitor.New(monitor.Config{Every: 1}, sink)

	m.Discovery(monitor.Snapshot{Solver: "bnb", Phase: "EXPAND", Nodes: 10, BestSize: 2, BestVertices: []int{0, 1}, Elapsed: time.Second})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "new incumbent", rec["msg"])
	require.Equal(t, "bnb", rec["solver"])
	require.Equal(t, "EXPAND", rec["phase"])
	require.Equal(t, m.RunID().String(), rec["run_id"])
	require.EqualValues(t, 2, rec["best"])
	require.EqualValues(t, 10, rec["nodes"])
	require.Equal(t, []any{0.0, 1.0}, rec["clique"])
}

func TestEstimateExact(t *testing.T) {
	_, ok := monitor.EstimateExact(0, time.Second, 10, 2)
	require.False(t, ok)
	_, ok = monitor.EstimateExact(100, 0, 10, 2)
	require.False(t, ok)

	e, ok := monitor.EstimateExact(1000, 2*time.Second, 10, 4)
	require.True(t, ok)
	require.InDelta(t, 500.0, e.Rate, 1e-9)
	require.InDelta(t, 6000.0, e.Pending, 1e-9)
	require.Equal(t, 12*time.Second, e.Remaining)
	require.Equal(t, 14*time.Second, e.Total)
	require.Zero(t, e.Progress)

	// best >= order still projects at least one more pass.
	e, ok = monitor.EstimateExact(10, time.Second, 3, 3)
	require.True(t, ok)
	require.Equal(t, time.Second, e.Remaining)
}

func TestEstimateGRASP(t *testing.T) {
	_, ok := monitor.EstimateGRASP(0, time.Second, 100)
	require.False(t, ok)

	e, ok := monitor.EstimateGRASP(25, 5*time.Second, 100)
	require.True(t, ok)
	require.InDelta(t, 5.0, e.Rate, 1e-9)
	require.Equal(t, 15*time.Second, e.Remaining)
	require.Equal(t, 20*time.Second, e.Total)
	require.InDelta(t, 0.25, e.Progress, 1e-9)
	require.Contains(t, e.String(), "remaining 15.0s")
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "59.0s", monitor.FormatDuration(59*time.Second))
	require.Equal(t, "1.5min", monitor.FormatDuration(90*time.Second))
	require.Equal(t, "2.0h", monitor.FormatDuration(2*time.Hour))
	require.Equal(t, "1.5d", monitor.FormatDuration(36*time.Hour))
}
