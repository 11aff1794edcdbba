package prayer

import (
	"testing"
	"time"
)

func testDay(t *testing.T) Day {
	t.Helper()

	loc := time.UTC
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, loc)

	at := func(hour, min int) time.Time {
		return time.Date(2026, time.March, 14, hour, min, 0, 0, loc)
	}

	return NewDay(date, map[Name]time.Time{
		Fajr:    at(5, 0),
		Sunrise: at(6, 10),
		Dhuhr:   at(12, 30),
		Asr:     at(15, 45),
		Maghrib: at(18, 20),
		Isha:    at(19, 40),
	}, time.Date(2026, time.March, 15, 5, 1, 0, 0, loc))
}

func TestCompute(t *testing.T) {
	t.Parallel()

	day := testDay(t)
	probe := func(hour, min, sec int) time.Time {
		return time.Date(2026, time.March, 14, hour, min, sec, 0, time.UTC)
	}

	tests := []struct {
		name           string
		now            time.Time
		wantNext       Name
		wantCurrent    Name
		wantTomorrow   bool
		wantHHMMSS     string
		wantUrgent     bool
		wantPassedUpTo Name // last entry in Order expected to be passed
	}{
		{
			name:        "before fajr",
			now:         probe(4, 30, 0),
			wantNext:    Fajr,
			wantCurrent: Isha,
			wantHHMMSS:  "00:30:00",
		},
		{
			name:           "between sunrise and dhuhr skips sunrise",
			now:            probe(9, 0, 0),
			wantNext:       Dhuhr,
			wantCurrent:    Fajr,
			wantHHMMSS:     "03:30:00",
			wantPassedUpTo: Sunrise,
		},
		{
			name:           "four minutes before maghrib is urgent",
			now:            probe(18, 16, 0),
			wantNext:       Maghrib,
			wantCurrent:    Asr,
			wantHHMMSS:     "00:04:00",
			wantUrgent:     true,
			wantPassedUpTo: Asr,
		},
		{
			name:           "exactly at maghrib is not yet passed",
			now:            probe(18, 20, 0),
			wantNext:       Maghrib,
			wantCurrent:    Asr,
			wantHHMMSS:     "00:00:00",
			wantUrgent:     true,
			wantPassedUpTo: Asr,
		},
		{
			name:           "after isha rolls over to tomorrow's fajr",
			now:            probe(23, 50, 0),
			wantNext:       Fajr,
			wantCurrent:    Isha,
			wantTomorrow:   true,
			wantHHMMSS:     "05:11:00",
			wantPassedUpTo: Isha,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := Compute(day, tt.now)

			if s.Next.Name != tt.wantNext {
				t.Errorf("next = %s, want %s", s.Next.Name, tt.wantNext)
			}
			if s.Current != tt.wantCurrent {
				t.Errorf("current = %s, want %s", s.Current, tt.wantCurrent)
			}
			if s.NextIsTomorrow != tt.wantTomorrow {
				t.Errorf("nextIsTomorrow = %v, want %v", s.NextIsTomorrow, tt.wantTomorrow)
			}
			if got := s.Countdown.HHMMSS(); got != tt.wantHHMMSS {
				t.Errorf("countdown = %s, want %s", got, tt.wantHHMMSS)
			}
			if s.Countdown.IsUrgent != tt.wantUrgent {
				t.Errorf("isUrgent = %v, want %v", s.Countdown.IsUrgent, tt.wantUrgent)
			}

			passed := false
			for _, name := range Order {
				if name == tt.wantPassedUpTo {
					passed = true
				}
			}
			if tt.wantPassedUpTo != "" && !passed {
				t.Fatalf("bad test case: %s not in Order", tt.wantPassedUpTo)
			}

			expectPassed := tt.wantPassedUpTo != ""
			for _, p := range s.Prayers {
				if expectPassed && !p.IsPassed {
					t.Errorf("%s should be passed at %s", p.Name, tt.now)
				}
				if !expectPassed && p.IsPassed {
					t.Errorf("%s should not be passed at %s", p.Name, tt.now)
				}
				if p.Name == tt.wantPassedUpTo {
					expectPassed = false
				}
			}
		})
	}
}

// Exactly one canonical prayer is next at any instant, except after the
// last canonical prayer, when none of today's are and the next is
// tomorrow's Fajr.
func TestComputeExactlyOneNext(t *testing.T) {
	t.Parallel()

	day := testDay(t)
	start := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	for minute := 0; minute < 24*60; minute += 7 {
		now := start.Add(time.Duration(minute) * time.Minute)
		s := Compute(day, now)

		var nextCount int
		for _, p := range s.Prayers {
			if p.Name == Sunrise && p.IsNext {
				t.Fatalf("sunrise marked next at %s", now)
			}
			if p.IsNext {
				nextCount++
			}
		}

		if s.NextIsTomorrow {
			if nextCount != 0 {
				t.Errorf("at %s: %d of today's prayers next despite rollover", now, nextCount)
			}
			if s.Next.Name != Fajr {
				t.Errorf("at %s: rollover next = %s, want fajr", now, s.Next.Name)
			}
		} else if nextCount != 1 {
			t.Errorf("at %s: %d prayers marked next, want 1", now, nextCount)
		}
	}
}

func TestComputeCountdownDecreases(t *testing.T) {
	t.Parallel()

	day := testDay(t)
	now := time.Date(2026, time.March, 14, 13, 0, 0, 0, time.UTC)
	prev := Compute(day, now).Countdown.TotalSeconds

	for i := 0; i < 600; i++ {
		now = now.Add(time.Second)
		s := Compute(day, now)

		if s.Next.Name != Asr {
			t.Fatalf("next changed to %s at %s", s.Next.Name, now)
		}
		if got := s.Countdown.TotalSeconds; got != prev-1 {
			t.Fatalf("at %s: totalSeconds = %d, want %d", now, got, prev-1)
		}
		prev = s.Countdown.TotalSeconds
	}
}

func TestComputeIdempotent(t *testing.T) {
	t.Parallel()

	day := testDay(t)
	now := time.Date(2026, time.March, 14, 18, 16, 42, 0, time.UTC)

	first := Compute(day, now)
	second := Compute(day, now)

	if first != second {
		t.Errorf("recomputing with the same instant diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
