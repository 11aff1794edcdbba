package prayer

import (
	"context"
	"time"
)

const defaultInterval = time.Second

// Watcher recomputes the snapshot for an immutable Day on a fixed cadence
// and publishes the result. Each watcher owns its ticker; cancelling the
// context tears it down, so swapping in a new day means cancelling the old
// watcher and starting a fresh one.
type Watcher struct {
	day       Day
	interval  time.Duration
	now       func() time.Time
	snapshots chan Snapshot
}

type WatcherOption func(*Watcher)

// WithInterval overrides the 1-second tick cadence.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.interval = d
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) WatcherOption {
	return func(w *Watcher) {
		w.now = now
	}
}

func NewWatcher(day Day, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		day:       day,
		interval:  defaultInterval,
		now:       time.Now,
		snapshots: make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Snapshots returns the channel snapshots are published on.
func (w *Watcher) Snapshots() <-chan Snapshot {
	return w.snapshots
}

// Run publishes an immediate snapshot, then one per tick, until the
// context is cancelled. A slow consumer only ever sees the most recent
// snapshot: stale ones are dropped, not queued.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.snapshots)

	w.publish(Compute(w.day, w.now()))

	for {
		select {
		case <-ticker.C:
			w.publish(Compute(w.day, w.now()))
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) publish(s Snapshot) {
	// drop the unconsumed snapshot, if any, and replace it
	select {
	case <-w.snapshots:
	default:
	}
	w.snapshots <- s
}
