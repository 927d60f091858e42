// Package monitor reports solver progress without slowing the solver down.
//
// A solver owns one *Monitor. On its hot path it calls Tick with a closure
// that builds a Snapshot; the closure only runs when the cadence gate
// (every N calls or every interval, whichever comes first) opens, so the
// common case costs one counter increment. Discovery and Final always emit.
//
// Snapshots go to a Sink. The package provides:
//
//   - LogSink: structured records through log/slog.
//   - MetricsSink: Prometheus gauges and counters on a caller registry.
//   - Async: a buffered channel drained by its own goroutine; the solver
//     never blocks on a slow consumer, overflow is counted and dropped.
//   - Multi, SinkFunc, Nop for composition.
//
// The estimator functions turn partial progress into a projected running
// time. They are used when a solver stops on its time limit.
package monitor
