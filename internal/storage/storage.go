// Package storage provides the server's timetable cache backends.
package storage

import (
	"context"
	"time"

	"github.com/mihrab-app/mihrab/internal/timetable"
)

// Backend caches day timetables under a namespacing key so that servers
// configured for different locations or methods never share entries.
type Backend interface {
	Get(ctx context.Context, key string, date time.Time) (timetable.DayTimes, bool, error)
	Put(ctx context.Context, key string, dt timetable.DayTimes, ttl time.Duration) error

	Close() error

	Ping(ctx context.Context) error
}

var _ timetable.Store = (*Store)(nil)

// Store binds a Backend to a single key and TTL, satisfying
// timetable.Store for use behind a cached source.
type Store struct {
	backend Backend
	key     string
	ttl     time.Duration
}

func NewStore(backend Backend, key string, ttl time.Duration) *Store {
	return &Store{backend: backend, key: key, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, date time.Time) (timetable.DayTimes, bool, error) {
	return s.backend.Get(ctx, s.key, date)
}

func (s *Store) Put(ctx context.Context, dt timetable.DayTimes) error {
	return s.backend.Put(ctx, s.key, dt, s.ttl)
}
