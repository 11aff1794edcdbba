package timetable

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mihrab-app/mihrab/internal/aladhan"
	"github.com/mihrab-app/mihrab/internal/prayer"
)

var _ Source = (*AlAdhanSource)(nil)

// AlAdhanSource computes timetables through the AlAdhan API.
type AlAdhanSource struct {
	client *aladhan.Client
	params aladhan.Params
	loc    *time.Location
}

func NewAlAdhanSource(client *aladhan.Client, params aladhan.Params, loc *time.Location) *AlAdhanSource {
	return &AlAdhanSource{client: client, params: params, loc: loc}
}

func (s *AlAdhanSource) Times(ctx context.Context, date time.Time) (DayTimes, error) {
	data, err := s.client.Timings(ctx, date, s.params)
	if err != nil {
		return DayTimes{}, fmt.Errorf("fetching timings for %s: %w", date.Format("2006-01-02"), err)
	}

	raw := map[prayer.Name]string{
		prayer.Fajr:    data.Timings.Fajr,
		prayer.Sunrise: data.Timings.Sunrise,
		prayer.Dhuhr:   data.Timings.Dhuhr,
		prayer.Asr:     data.Timings.Asr,
		prayer.Maghrib: data.Timings.Maghrib,
		prayer.Isha:    data.Timings.Isha,
	}

	times := make(map[prayer.Name]time.Time, len(raw))
	for name, clock := range raw {
		t, err := parseClock(clock, date, s.loc)
		if err != nil {
			return DayTimes{}, fmt.Errorf("parsing %s time %q: %w", name, clock, err)
		}
		times[name] = t
	}

	return DayTimes{
		Date:  Midnight(date, s.loc),
		Times: times,
		Hijri: data.Date.Hijri.Format(),
	}, nil
}

// Midnight truncates a time to the start of its day in the given location.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// parseClock parses an "HH:MM" string, tolerating a timezone suffix like
// "05:00 (BST)", into a timestamp on the given date in the given location.
func parseClock(raw string, date time.Time, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		s = s[:idx]
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid clock format: %q", raw)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", raw)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", raw)
	}

	date = date.In(loc)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}
