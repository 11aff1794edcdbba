// Package config reads user settings from the environment. The merge
// priority is: environment > .env file (loaded in main) > defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	TimeFormat24h = "24h"
	TimeFormat12h = "12h"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config holds the location, calculation convention, and display settings.
// Defaults point at Makkah with the Umm al-Qura method.
type Config struct {
	Latitude  float64 `env:"MIHRAB_LATITUDE" envDefault:"21.4225"`
	Longitude float64 `env:"MIHRAB_LONGITUDE" envDefault:"39.8262"`

	// Method and School follow the AlAdhan numbering; -1 lets the API pick.
	Method int `env:"MIHRAB_METHOD" envDefault:"4"`
	School int `env:"MIHRAB_SCHOOL" envDefault:"-1"`

	// Timezone is the reference timezone all timestamps are resolved in.
	Timezone string `env:"MIHRAB_TIMEZONE" envDefault:"Asia/Riyadh"`

	TimeFormat string `env:"MIHRAB_TIME_FORMAT" envDefault:"24h"`
	Theme      string `env:"MIHRAB_THEME" envDefault:"dark"`

	// Translation toggles verse translations on by default in the reader.
	Translation bool `env:"MIHRAB_TRANSLATION" envDefault:"true"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Longitude)
	}
	if c.TimeFormat != TimeFormat24h && c.TimeFormat != TimeFormat12h {
		return fmt.Errorf("invalid time format %q (valid: 24h, 12h)", c.TimeFormat)
	}
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("invalid theme %q (valid: dark, light)", c.Theme)
	}
	return nil
}

// Location resolves the reference timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ClockLayout returns the time.Format layout for the configured format.
func (c Config) ClockLayout() string {
	if c.TimeFormat == TimeFormat12h {
		return "3:04 PM"
	}
	return "15:04"
}
