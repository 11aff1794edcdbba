package timetable

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mihrab-app/mihrab/internal/prayer"
)

// Loader assembles the immutable per-day basis: today's six times plus
// tomorrow's Fajr, fetched concurrently from the source.
type Loader struct {
	source Source
	loc    *time.Location
}

func NewLoader(source Source, loc *time.Location) *Loader {
	return &Loader{source: source, loc: loc}
}

// Load builds the prayer.Day for the date. Tomorrow's timetable is fetched
// eagerly even though only its Fajr is kept; it is needed as soon as the
// day's last prayer passes, and the source caches it for tomorrow anyway.
func (l *Loader) Load(ctx context.Context, date time.Time) (prayer.Day, error) {
	var today, tomorrow DayTimes

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = l.source.Times(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		tomorrow, err = l.source.Times(gctx, date.AddDate(0, 0, 1))
		return err
	})
	if err := g.Wait(); err != nil {
		return prayer.Day{}, fmt.Errorf("loading timetable: %w", err)
	}

	day := prayer.NewDay(Midnight(date, l.loc), today.Times, tomorrow.Times[prayer.Fajr])
	return day.WithHijri(today.Hijri), nil
}
