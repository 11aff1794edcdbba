package version

import "testing"

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{name: "same version", current: "1.0.0", latest: "1.0.0", want: false},
		{name: "same version with v prefix on current", current: "v1.0.0", latest: "1.0.0", want: false},
		{name: "same version with v prefix on latest", current: "1.0.0", latest: "v1.0.0", want: false},
		{name: "newer patch", current: "1.0.0", latest: "1.0.1", want: true},
		{name: "newer minor", current: "1.0.9", latest: "1.1.0", want: true},
		{name: "newer major", current: "1.9.9", latest: "2.0.0", want: true},
		{name: "older latest", current: "2.0.0", latest: "1.9.9", want: false},
		{name: "prerelease suffix ignored", current: "1.0.0", latest: "v1.0.1-rc.1", want: true},
		{name: "devel current treated as zero", current: "devel", latest: "v0.1.0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNewer(tt.current, tt.latest); got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}
