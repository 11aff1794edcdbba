package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/timetable"
)

var _ TimetableRepository = (*timetableRepo)(nil)
var _ timetable.Store = (*timetableRepo)(nil)

type timetableRepo struct {
	db  *sql.DB
	key string
	loc *time.Location
}

const dateLayout = "2006-01-02"

func (r *timetableRepo) Get(ctx context.Context, date time.Time) (timetable.DayTimes, bool, error) {
	const query = `
		SELECT hijri, fajr, sunrise, dhuhr, asr, maghrib, isha
		FROM timetables
		WHERE cache_key = ? AND date = ?`

	day := timetable.Midnight(date, r.loc)

	var (
		hijri string
		unix  [len(prayer.Order)]int64
	)
	err := r.db.QueryRowContext(ctx, query, r.key, day.Format(dateLayout)).Scan(
		&hijri, &unix[0], &unix[1], &unix[2], &unix[3], &unix[4], &unix[5],
	)
	if errors.Is(err, sql.ErrNoRows) {
		return timetable.DayTimes{}, false, nil
	}
	if err != nil {
		return timetable.DayTimes{}, false, fmt.Errorf("failed to query timetable: %w", err)
	}

	times := make(map[prayer.Name]time.Time, len(prayer.Order))
	for i, name := range prayer.Order {
		times[name] = time.Unix(unix[i], 0).In(r.loc)
	}

	return timetable.DayTimes{Date: day, Times: times, Hijri: hijri}, true, nil
}

func (r *timetableRepo) Put(ctx context.Context, dt timetable.DayTimes) error {
	const query = `
		INSERT INTO timetables (cache_key, date, hijri, fajr, sunrise, dhuhr, asr, maghrib, isha, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (cache_key, date) DO UPDATE SET
			hijri = excluded.hijri,
			fajr = excluded.fajr,
			sunrise = excluded.sunrise,
			dhuhr = excluded.dhuhr,
			asr = excluded.asr,
			maghrib = excluded.maghrib,
			isha = excluded.isha,
			created_at = excluded.created_at`

	args := make([]any, 0, 10)
	args = append(args, r.key, dt.Date.Format(dateLayout), dt.Hijri)
	for _, name := range prayer.Order {
		args = append(args, dt.Times[name].Unix())
	}
	args = append(args, time.Now().Unix())

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert timetable: %w", err)
	}
	return nil
}

func (r *timetableRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timetables`); err != nil {
		return fmt.Errorf("failed to clear timetables: %w", err)
	}
	return nil
}
