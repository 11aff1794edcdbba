// Package repository is the sqlite persistence layer: cached per-day
// timetables and the reader's bookmark.
package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"time"

	"github.com/mihrab-app/mihrab/internal/timetable"
)

type Repository struct {
	Timetables TimetableRepository
	Bookmarks  BookmarkRepository
}

// CacheParams identify a timetable's calculation inputs. Timetables for
// different locations or methods never collide in the cache.
type CacheParams struct {
	Latitude  float64
	Longitude float64
	Method    int
	School    int
}

// key builds a deterministic cache key from the calculation inputs.
func (p CacheParams) key() string {
	raw := fmt.Sprintf("%.6f|%.6f|%d|%d", p.Latitude, p.Longitude, p.Method, p.School)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum[:8])
}

func New(sqlDB *sql.DB, params CacheParams, loc *time.Location) *Repository {
	return &Repository{
		Timetables: &timetableRepo{db: sqlDB, key: params.key(), loc: loc},
		Bookmarks:  &bookmarkRepo{db: sqlDB},
	}
}

// TimetableRepository caches day timetables. It satisfies timetable.Store.
type TimetableRepository interface {
	Get(ctx context.Context, date time.Time) (timetable.DayTimes, bool, error)
	Put(ctx context.Context, dt timetable.DayTimes) error

	// Clear drops every cached timetable, for all locations and methods.
	Clear(ctx context.Context) error
}

// Bookmark is the reader's last position.
type Bookmark struct {
	Surah     int
	Verse     int
	UpdatedAt time.Time
}

type BookmarkRepository interface {
	Get(ctx context.Context) (Bookmark, bool, error)
	Set(ctx context.Context, surah, verse int) error
}
