package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink exports the latest snapshot as Prometheus metrics.
// All series carry a "solver" label.
type MetricsSink struct {
	best        *prometheus.GaugeVec
	work        *prometheus.GaugeVec
	throughput  *prometheus.GaugeVec
	satQueries  *prometheus.GaugeVec
	prunes      *prometheus.GaugeVec
	elapsed     *prometheus.GaugeVec
	discoveries *prometheus.CounterVec
	snapshots   *prometheus.CounterVec
}

// NewMetricsSink registers the collectors on reg under namespace
// (default "cliquesat"). It fails if a collector is already registered.
func NewMetricsSink(reg prometheus.Registerer, namespace string) (*MetricsSink, error) {
	if namespace == "" {
		namespace = "cliquesat"
	}
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, []string{"solver"})
	}
	m := &MetricsSink{
		best:       gauge("best_clique_size", "Size of the best clique found so far."),
		work:       gauge("work_units", "Search nodes (exact) or iterations (GRASP) processed."),
		throughput: gauge("throughput_per_second", "Work units per second."),
		satQueries: gauge("sat_queries", "SAT probes issued."),
		prunes:     gauge("prunes", "Subtrees closed by the coloring bound."),
		elapsed:    gauge("elapsed_seconds", "Wall time since the run started."),
		discoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discoveries_total",
			Help:      "Incumbent improvements.",
		}, []string{"solver"}),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_total",
			Help:      "Snapshots observed, by kind.",
		}, []string{"solver", "kind"}),
	}
	for _, c := range []prometheus.Collector{m.best, m.work, m.throughput, m.satQueries, m.prunes, m.elapsed, m.discoveries, m.snapshots} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Observe implements Sink.
func (m *MetricsSink) Observe(s Snapshot) {
	m.best.WithLabelValues(s.Solver).Set(float64(s.BestSize))
	m.work.WithLabelValues(s.Solver).Set(float64(s.Work()))
	m.throughput.WithLabelValues(s.Solver).Set(s.Throughput)
	m.satQueries.WithLabelValues(s.Solver).Set(float64(s.SATQueries))
	m.prunes.WithLabelValues(s.Solver).Set(float64(s.Prunes))
	m.elapsed.WithLabelValues(s.Solver).Set(s.Elapsed.Seconds())
	if s.Kind == Discovery {
		m.discoveries.WithLabelValues(s.Solver).Inc()
	}
	m.snapshots.WithLabelValues(s.Solver, s.Kind.String()).Inc()
}
