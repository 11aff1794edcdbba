package prayer

import (
	"fmt"
	"time"
)

// UrgentThreshold is the remaining time under which a countdown is
// considered urgent.
const UrgentThreshold = 5 * time.Minute

// Countdown is the decomposed time remaining until the next prayer.
// It is recomputed every tick from (next prayer time - now).
type Countdown struct {
	Hours        int
	Minutes      int
	Seconds      int
	TotalSeconds int

	// IsUrgent is true when less than five minutes remain.
	IsUrgent bool
}

// NewCountdown builds a Countdown from a remaining duration.
// Negative durations clamp to zero.
func NewCountdown(remaining time.Duration) Countdown {
	if remaining < 0 {
		remaining = 0
	}

	total := int(remaining / time.Second)

	return Countdown{
		Hours:        total / 3600,
		Minutes:      (total % 3600) / 60,
		Seconds:      total % 60,
		TotalSeconds: total,
		IsUrgent:     remaining < UrgentThreshold,
	}
}

// HHMMSS returns the machine-parseable form, e.g. "02:14:30".
func (c Countdown) HHMMSS() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// Human returns the localized human form, dropping leading zero units:
// "2h 14min 30s", "14min 30s", "45s".
func (c Countdown) Human() string {
	switch {
	case c.Hours > 0:
		return fmt.Sprintf("%dh %dmin %ds", c.Hours, c.Minutes, c.Seconds)
	case c.Minutes > 0:
		return fmt.Sprintf("%dmin %ds", c.Minutes, c.Seconds)
	default:
		return fmt.Sprintf("%ds", c.Seconds)
	}
}
