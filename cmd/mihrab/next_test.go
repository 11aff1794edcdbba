package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/timetable"
)

func testSnapshot(t *testing.T) prayer.Snapshot {
	t.Helper()

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	times := map[prayer.Name]time.Time{
		prayer.Fajr:    date.Add(5 * time.Hour),
		prayer.Sunrise: date.Add(6*time.Hour + 30*time.Minute),
		prayer.Dhuhr:   date.Add(12 * time.Hour),
		prayer.Asr:     date.Add(15 * time.Hour),
		prayer.Maghrib: date.Add(18 * time.Hour),
		prayer.Isha:    date.Add(19*time.Hour + 30*time.Minute),
	}
	day := prayer.NewDay(date, times, date.Add(29*time.Hour))

	// 13:55, so asr is next in 1h05m
	return prayer.Compute(day, date.Add(13*time.Hour+55*time.Minute))
}

func TestSnapshotRenderer(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "full",
			format: "full",
			want:   "Asr (العصر) at 15:00, in 1h 5min 0s",
		},
		{
			name:   "short",
			format: "short",
			want:   "Asr 15:00",
		},
		{
			name:   "remaining",
			format: "remaining",
			want:   "01:05:00",
		},
		{
			name:   "template",
			format: "{{.Next}} in {{.Countdown}}",
			want:   "Asr in 01:05:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			render, err := snapshotRenderer(tt.format, "15:04")
			if err != nil {
				t.Fatalf("snapshotRenderer(%q): %v", tt.format, err)
			}

			got, err := render(snap)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapshotRendererBadTemplate(t *testing.T) {
	t.Parallel()

	if _, err := snapshotRenderer("{{.Next", "15:04"); err == nil {
		t.Error("expected parse error for unterminated template")
	}
}

type watchSource struct {
	mu    sync.Mutex
	loads []time.Time
}

func (s *watchSource) Times(_ context.Context, date time.Time) (timetable.DayTimes, error) {
	s.mu.Lock()
	s.loads = append(s.loads, date)
	s.mu.Unlock()

	midnight := timetable.Midnight(date, time.UTC)
	return timetable.DayTimes{
		Date: midnight,
		Times: map[prayer.Name]time.Time{
			prayer.Fajr:    midnight.Add(5 * time.Hour),
			prayer.Sunrise: midnight.Add(6 * time.Hour),
			prayer.Dhuhr:   midnight.Add(12 * time.Hour),
			prayer.Asr:     midnight.Add(15 * time.Hour),
			prayer.Maghrib: midnight.Add(18 * time.Hour),
			prayer.Isha:    midnight.Add(19 * time.Hour),
		},
	}, nil
}

func (s *watchSource) fetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.loads)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func TestWatchLoopReloadsOnRollover(t *testing.T) {
	t.Parallel()

	source := &watchSource{}
	loader := timetable.NewLoader(source, time.UTC)

	// 23:00 on day one: all five prayers passed, next is tomorrow's fajr
	clock := &fakeClock{t: time.Date(2026, time.March, 14, 23, 0, 0, 0, time.UTC)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		buf             bytes.Buffer
		sawTomorrowFajr bool
	)
	render := func(snap prayer.Snapshot) (string, error) {
		switch {
		case snap.NextIsTomorrow:
			sawTomorrowFajr = true
			// cross midnight before the next tick
			clock.Set(time.Date(2026, time.March, 15, 6, 0, 0, 0, time.UTC))
		case snap.Next.Name == prayer.Dhuhr:
			// the reloaded day: fajr passed, dhuhr upcoming
			cancel()
		}
		return formatSnapshot(snap, "15:04"), nil
	}

	if err := watchLoop(ctx, loader, time.UTC, clock.Now, time.Millisecond, render, &buf); err != nil {
		t.Fatalf("watchLoop: %v", err)
	}

	if !sawTomorrowFajr {
		t.Fatal("expected a tomorrow-fajr snapshot before rollover")
	}

	// two fetches per Load (today + tomorrow), two Loads
	if got := source.fetches(); got != 4 {
		t.Errorf("expected a reload after rollover (4 source fetches), got %d", got)
	}

	if !strings.Contains(buf.String(), "Dhuhr") {
		t.Errorf("output missing the reloaded day's next prayer: %q", buf.String())
	}
}
