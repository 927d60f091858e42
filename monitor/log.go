package monitor

import (
	"context"
	"log/slog"
)

// LogSink writes snapshots as structured log records.
// Periodic snapshots log at Info, discoveries at Info with the clique,
// the final snapshot at Info with a "done" message.
type LogSink struct {
	Logger *slog.Logger
	// Level overrides the record level for periodic snapshots.
	Level slog.Level
}

// NewLogSink returns a LogSink on l; nil means slog.Default().
func NewLogSink(l *slog.Logger) *LogSink {
	if l == nil {
		l = slog.Default()
	}

	return &LogSink{Logger: l, Level: slog.LevelInfo}
}

// Observe implements Sink.
func (ls *LogSink) Observe(s Snapshot) {
	attrs := []slog.Attr{
		slog.String("run_id", s.RunID.String()),
		slog.String("solver", s.Solver),
		slog.String("phase", s.Phase),
		slog.Duration("elapsed", s.Elapsed),
		slog.Int("best", s.BestSize),
		slog.Float64("throughput", s.Throughput),
	}
	if s.Nodes > 0 {
		attrs = append(attrs, slog.Int64("nodes", s.Nodes), slog.Int64("prunes", s.Prunes), slog.Int64("sat_queries", s.SATQueries))
	}
	if s.Iterations > 0 {
		attrs = append(attrs, slog.Int64("iterations", s.Iterations))
	}

	var (
		msg   = "progress"
		level = ls.Level
	)
	switch s.Kind {
	case Discovery:
		msg, level = "new incumbent", slog.LevelInfo
		attrs = append(attrs, slog.Any("clique", s.BestVertices))
	case Final:
		msg, level = "done", slog.LevelInfo
	}
	ls.Logger.LogAttrs(context.Background(), level, msg, attrs...)
}
