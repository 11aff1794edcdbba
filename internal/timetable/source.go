// Package timetable acquires the daily prayer timetable from a calculation
// source and assembles the immutable per-day basis the rest of the app
// derives state from.
package timetable

import (
	"context"
	"time"

	"github.com/mihrab-app/mihrab/internal/prayer"
)

// DayTimes is one calendar day's raw timetable as produced by a source.
type DayTimes struct {
	// Date is midnight of the day in the reference location.
	Date  time.Time
	Times map[prayer.Name]time.Time

	// Hijri is the Hijri date string for display, when the source knows it.
	Hijri string
}

// Source produces the timetable for a single date. The astronomical
// calculation itself is a black box behind this interface.
type Source interface {
	Times(ctx context.Context, date time.Time) (DayTimes, error)
}

// Store caches day timetables so a source is only consulted once per day
// per location/method.
type Store interface {
	// Get returns the cached timetable for the date, if present.
	Get(ctx context.Context, date time.Time) (DayTimes, bool, error)
	Put(ctx context.Context, dt DayTimes) error
}
