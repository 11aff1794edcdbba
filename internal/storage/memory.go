package storage

import (
	"context"
	"sync"
	"time"

	"github.com/mihrab-app/mihrab/internal/timetable"
)

var _ Backend = (*MemoryBackend)(nil)

type memoryEntry struct {
	dt        timetable.DayTimes
	expiresAt time.Time
}

type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	done chan struct{}
}

func NewMemoryBackend() *MemoryBackend {
	m := &MemoryBackend{
		entries: make(map[string]memoryEntry),
		done:    make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

func entryKey(key string, date time.Time) string {
	return key + ":" + date.Format("2006-01-02")
}

func (m *MemoryBackend) Get(_ context.Context, key string, date time.Time) (timetable.DayTimes, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[entryKey(key, date)]
	m.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return timetable.DayTimes{}, false, nil
	}

	return e.dt, true, nil
}

func (m *MemoryBackend) Put(_ context.Context, key string, dt timetable.DayTimes, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[entryKey(key, dt.Date)] = memoryEntry{dt: dt, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Close() error {
	close(m.done)
	return nil
}

func (m *MemoryBackend) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryBackend) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			now := time.Now()
			for k, e := range m.entries {
				if now.After(e.expiresAt) {
					delete(m.entries, k)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}
