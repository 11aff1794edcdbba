package prayer

import (
	"context"
	"testing"
	"time"
)

func TestWatcherPublishesImmediately(t *testing.T) {
	t.Parallel()

	day := testDay(t)
	now := time.Date(2026, time.March, 14, 18, 16, 0, 0, time.UTC)

	w := NewWatcher(day,
		WithInterval(time.Hour), // never fires within the test
		WithClock(func() time.Time { return now }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	select {
	case s := <-w.Snapshots():
		if s.Next.Name != Maghrib {
			t.Errorf("next = %s, want maghrib", s.Next.Name)
		}
		if !s.Countdown.IsUrgent {
			t.Error("expected urgent countdown four minutes before maghrib")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot published on start")
	}
}

func TestWatcherTicks(t *testing.T) {
	t.Parallel()

	day := testDay(t)

	base := time.Date(2026, time.March, 14, 13, 0, 0, 0, time.UTC)
	step := 0
	clock := func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	w := NewWatcher(day, WithInterval(5*time.Millisecond), WithClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	deadline := time.After(2 * time.Second)
	var last int
	for received := 0; received < 3; {
		select {
		case s := <-w.Snapshots():
			if last != 0 && s.Countdown.TotalSeconds >= last {
				t.Errorf("countdown did not decrease: %d -> %d", last, s.Countdown.TotalSeconds)
			}
			last = s.Countdown.TotalSeconds
			received++
		case <-deadline:
			t.Fatal("watcher stopped ticking")
		}
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	t.Parallel()

	day := testDay(t)
	w := NewWatcher(day, WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	<-w.Snapshots()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
