package server

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/mihrab-app/mihrab/internal/env"
)

type Config struct {
	Port string             `env:"PORT" envDefault:"8080"`
	Env  appenv.Environment `env:"ENV" envDefault:"development"`

	Latitude  float64 `env:"LATITUDE" envDefault:"21.4225"`
	Longitude float64 `env:"LONGITUDE" envDefault:"39.8262"`
	Method    int     `env:"METHOD" envDefault:"4"`
	School    int     `env:"SCHOOL" envDefault:"-1"`
	Timezone  string  `env:"TIMEZONE" envDefault:"Asia/Riyadh"`

	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"48h"`
	RateLimit RateLimit     `envPrefix:"RATE_"`
	Redis     Redis         `envPrefix:"REDIS_"`
}

type RateLimit struct {
	Limit float64 `env:"LIMIT" envDefault:"10"`
	Burst int     `env:"BURST" envDefault:"20"`
}

// Redis holds the cache backend connection. An empty URL selects the
// in-memory backend.
type Redis struct {
	URL string `env:"URL"`
}

func ReadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return Config{}, fmt.Errorf("latitude %f out of range [-90, 90]", cfg.Latitude)
	}
	if cfg.Longitude < -180 || cfg.Longitude > 180 {
		return Config{}, fmt.Errorf("longitude %f out of range [-180, 180]", cfg.Longitude)
	}

	return cfg, nil
}

// CacheKey namespaces cached timetables by their calculation inputs.
func (c Config) CacheKey() string {
	raw := fmt.Sprintf("%.6f|%.6f|%d|%d", c.Latitude, c.Longitude, c.Method, c.School)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum[:8])
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
