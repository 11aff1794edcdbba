package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

func testDay(t *testing.T) prayer.Day {
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
	return prayer.NewDay(date, times, date.Add(29*time.Hour))
}

func TestHomeView(t *testing.T) {
	t.Parallel()

	day := testDay(t).WithHijri("20 Ramadan 1447 AH")

	m := &Model{
		theme: theme.New(theme.Dark),
		deps:  Deps{Location: time.UTC},
	}
	m.state.home.Day = day
	m.state.home.Snapshot = prayer.Compute(day, day.Date.Add(13*time.Hour+55*time.Minute))

	view := m.HomeView()

	if !strings.Contains(view, "UNTIL ASR") {
		t.Errorf("ring label missing uppercased next prayer:\n%s", view)
	}
	if !strings.Contains(view, "20 Ramadan 1447 AH") {
		t.Errorf("header missing Hijri date:\n%s", view)
	}
	if !strings.Contains(view, "Tuesday, 10 March 2026") {
		t.Errorf("header missing Gregorian date:\n%s", view)
	}
	if !strings.Contains(view, "Maghrib") {
		t.Errorf("prayer cards missing upcoming prayer:\n%s", view)
	}
}
