package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/timetable"
)

var _ Backend = (*RedisBackend)(nil)

const timetableKeyPrefix = "timetable:"

type RedisBackend struct {
	client *redis.Client
	loc    *time.Location
}

func NewRedisBackend(client *redis.Client, loc *time.Location) *RedisBackend {
	return &RedisBackend{client: client, loc: loc}
}

// cachedDay is the redis wire form. Times travel as unix seconds so the
// configured location, not the marshalling host, decides presentation.
type cachedDay struct {
	Date  string           `json:"date"`
	Hijri string           `json:"hijri"`
	Times map[string]int64 `json:"times"`
}

func redisKey(key string, date time.Time) string {
	return timetableKeyPrefix + key + ":" + date.Format("2006-01-02")
}

func (r *RedisBackend) Get(ctx context.Context, key string, date time.Time) (timetable.DayTimes, bool, error) {
	data, err := r.client.Get(ctx, redisKey(key, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return timetable.DayTimes{}, false, nil
	}
	if err != nil {
		return timetable.DayTimes{}, false, fmt.Errorf("failed to get timetable: %w", err)
	}

	var cached cachedDay
	if err := go_json.Unmarshal(data, &cached); err != nil {
		return timetable.DayTimes{}, false, fmt.Errorf("failed to unmarshal timetable: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", cached.Date, r.loc)
	if err != nil {
		return timetable.DayTimes{}, false, fmt.Errorf("failed to parse cached date: %w", err)
	}

	times := make(map[prayer.Name]time.Time, len(cached.Times))
	for name, unix := range cached.Times {
		times[prayer.Name(name)] = time.Unix(unix, 0).In(r.loc)
	}

	return timetable.DayTimes{Date: day, Times: times, Hijri: cached.Hijri}, true, nil
}

func (r *RedisBackend) Put(ctx context.Context, key string, dt timetable.DayTimes, ttl time.Duration) error {
	cached := cachedDay{
		Date:  dt.Date.Format("2006-01-02"),
		Hijri: dt.Hijri,
		Times: make(map[string]int64, len(dt.Times)),
	}
	for name, t := range dt.Times {
		cached.Times[string(name)] = t.Unix()
	}

	data, err := go_json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to marshal timetable: %w", err)
	}

	if err := r.client.Set(ctx, redisKey(key, dt.Date), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set timetable: %w", err)
	}

	return nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
