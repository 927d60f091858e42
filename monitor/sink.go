package monitor

// Sink consumes snapshots. Observe is called from the solver goroutine and
// must not retain BestVertices beyond the call unless it copies it.
type Sink interface {
	Observe(Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Snapshot)

// Observe implements Sink.
func (f SinkFunc) Observe(s Snapshot) { f(s) }

// Nop discards every snapshot.
type Nop struct{}

// Observe implements Sink.
func (Nop) Observe(Snapshot) {}

// Multi fans a snapshot out to every sink in order; nil entries are skipped.
type Multi []Sink

// Observe implements Sink.
func (m Multi) Observe(s Snapshot) {
	for _, sink := range m {
		if sink != nil {
			sink.Observe(s)
		}
	}
}
