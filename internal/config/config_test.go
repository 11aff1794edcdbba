package config

import "testing"

func TestReadDefaults(t *testing.T) {
	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if cfg.Method != 4 {
		t.Errorf("method = %d, want 4 (Umm al-Qura)", cfg.Method)
	}
	if cfg.Timezone != "Asia/Riyadh" {
		t.Errorf("timezone = %q, want Asia/Riyadh", cfg.Timezone)
	}
	if got := cfg.ClockLayout(); got != "15:04" {
		t.Errorf("layout = %q, want 24h layout", got)
	}
	if _, err := cfg.Location(); err != nil {
		t.Errorf("Location() error: %v", err)
	}
}

func TestReadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "latitude out of range", key: "MIHRAB_LATITUDE", value: "91"},
		{name: "longitude out of range", key: "MIHRAB_LONGITUDE", value: "-181"},
		{name: "unknown time format", key: "MIHRAB_TIME_FORMAT", value: "decimal"},
		{name: "unknown theme", key: "MIHRAB_THEME", value: "sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Read(); err == nil {
				t.Errorf("Read() accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestClockLayout12h(t *testing.T) {
	t.Setenv("MIHRAB_TIME_FORMAT", "12h")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got := cfg.ClockLayout(); got != "3:04 PM" {
		t.Errorf("layout = %q, want 12h layout", got)
	}
}
