package monitor

import (
	"sync"
	"sync/atomic"
)

// DefaultAsyncBuffer is the queue length used when NewAsync gets size <= 0.
const DefaultAsyncBuffer = 64

// Async forwards snapshots to Next from a dedicated goroutine.
// Observe never blocks: when the queue is full the snapshot is dropped and
// counted. Final snapshots are the exception and wait for room, so the
// consumer always sees the end of a run.
type Async struct {
	next    Sink
	ch      chan Snapshot
	dropped atomic.Int64
	wg      sync.WaitGroup
	once    sync.Once
}

// NewAsync starts the forwarding goroutine. Call Close to drain and stop it.
func NewAsync(next Sink, size int) *Async {
	if size <= 0 {
		size = DefaultAsyncBuffer
	}
	if next == nil {
		next = Nop{}
	}
	a := &Async{next: next, ch: make(chan Snapshot, size)}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for s := range a.ch {
			a.next.Observe(s)
		}
	}()

	return a
}

// Observe implements Sink. BestVertices is copied before queuing.
func (a *Async) Observe(s Snapshot) {
	if s.BestVertices != nil {
		s.BestVertices = append([]int(nil), s.BestVertices...)
	}
	if s.Kind == Final {
		a.ch <- s
		return
	}
	select {
	case a.ch <- s:
	default:
		a.dropped.Add(1)
	}
}

// Dropped returns how many snapshots were discarded on a full queue.
func (a *Async) Dropped() int64 { return a.dropped.Load() }

// Close stops accepting snapshots and waits until the queue is drained.
// Observe must not be called after Close.
func (a *Async) Close() {
	a.once.Do(func() {
		close(a.ch)
		a.wg.Wait()
	})
}
