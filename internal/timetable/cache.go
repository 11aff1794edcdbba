package timetable

import (
	"context"
	"log/slog"
	"time"

	"github.com/mihrab-app/mihrab/internal/xslog"
)

var _ Source = (*CachedSource)(nil)

// CachedSource consults the store before the underlying source, so the
// calculation runs once per day. Store failures degrade to a direct
// fetch; they never fail the lookup.
type CachedSource struct {
	source Source
	store  Store
	logger *slog.Logger
}

func NewCachedSource(source Source, store Store, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{source: source, store: store, logger: logger}
}

func (c *CachedSource) Times(ctx context.Context, date time.Time) (DayTimes, error) {
	if cached, ok, err := c.store.Get(ctx, date); err != nil {
		c.logger.WarnContext(ctx, "timetable cache read failed", xslog.Error(err))
	} else if ok {
		return cached, nil
	}

	dt, err := c.source.Times(ctx, date)
	if err != nil {
		return DayTimes{}, err
	}

	if err := c.store.Put(ctx, dt); err != nil {
		c.logger.WarnContext(ctx, "timetable cache write failed", xslog.Error(err))
	}

	return dt, nil
}
