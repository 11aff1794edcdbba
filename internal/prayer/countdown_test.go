package prayer

import (
	"testing"
	"time"
)

func TestNewCountdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remaining  time.Duration
		wantTotal  int
		wantHHMMSS string
		wantHuman  string
		wantUrgent bool
	}{
		{
			name:       "over an hour",
			remaining:  2*time.Hour + 14*time.Minute + 30*time.Second,
			wantTotal:  8070,
			wantHHMMSS: "02:14:30",
			wantHuman:  "2h 14min 30s",
		},
		{
			name:       "hour with zero seconds",
			remaining:  3720 * time.Second,
			wantTotal:  3720,
			wantHHMMSS: "01:02:00",
			wantHuman:  "1h 2min 0s",
		},
		{
			name:       "minutes only",
			remaining:  14*time.Minute + 30*time.Second,
			wantTotal:  870,
			wantHHMMSS: "00:14:30",
			wantHuman:  "14min 30s",
		},
		{
			name:       "seconds only",
			remaining:  45 * time.Second,
			wantTotal:  45,
			wantHHMMSS: "00:00:45",
			wantHuman:  "45s",
			wantUrgent: true,
		},
		{
			name:       "just under the urgent threshold",
			remaining:  4*time.Minute + 59*time.Second,
			wantTotal:  299,
			wantHHMMSS: "00:04:59",
			wantHuman:  "4min 59s",
			wantUrgent: true,
		},
		{
			name:       "exactly the urgent threshold is not urgent",
			remaining:  5 * time.Minute,
			wantTotal:  300,
			wantHHMMSS: "00:05:00",
			wantHuman:  "5min 0s",
		},
		{
			name:       "negative clamps to zero",
			remaining:  -3 * time.Second,
			wantTotal:  0,
			wantHHMMSS: "00:00:00",
			wantHuman:  "0s",
			wantUrgent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCountdown(tt.remaining)

			if c.TotalSeconds != tt.wantTotal {
				t.Errorf("TotalSeconds = %d, want %d", c.TotalSeconds, tt.wantTotal)
			}
			if got := c.HHMMSS(); got != tt.wantHHMMSS {
				t.Errorf("HHMMSS() = %q, want %q", got, tt.wantHHMMSS)
			}
			if got := c.Human(); got != tt.wantHuman {
				t.Errorf("Human() = %q, want %q", got, tt.wantHuman)
			}
			if c.IsUrgent != tt.wantUrgent {
				t.Errorf("IsUrgent = %v, want %v", c.IsUrgent, tt.wantUrgent)
			}
		})
	}
}
