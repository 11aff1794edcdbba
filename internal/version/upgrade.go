package version

import (
	"strconv"
	"strings"
)

// IsNewer reports whether latest is a strictly newer semver than current.
// Unparseable segments compare as zero.
func IsNewer(current, latest string) bool {
	c := parseSemver(current)
	l := parseSemver(latest)

	for i := range 3 {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func parseSemver(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	if idx := strings.IndexAny(v, "-+"); idx >= 0 {
		v = v[:idx]
	}

	var out [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}
