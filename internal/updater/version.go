package updater

import (
	"fmt"
	"strconv"
	"strings"
)

// CompareVersions compares semver-ish tags like "v2024.3.1" or "1.2.3".
// Returns -1 if a<b, 0 if equal, 1 if a>b, ok=false if unparsable.
func CompareVersions(a, b string) (cmp int, ok bool) {
	a = strings.TrimSpace(strings.TrimPrefix(a, "v"))
	b = strings.TrimSpace(strings.TrimPrefix(b, "v"))
	if a == "" || b == "" {
		return 0, false
	}
	ap, err := parseVersionParts(a)
	if err != nil {
		return 0, false
	}
	bp, err := parseVersionParts(b)
	if err != nil {
		return 0, false
	}
	for i := 0; i < 3; i++ {
		if ap[i] < bp[i] {
			return -1, true
		}
		if ap[i] > bp[i] {
			return 1, true
		}
	}
	return 0, true
}

// NeedsUpdate reports whether current should be replaced by latest.
// Incomparable versions (dev builds, date tags with extra text) are treated
// as needing an update so a stale launcher never wedges itself.
func NeedsUpdate(current, latest string) (needs bool, comparable bool) {
	cur := strings.TrimSpace(current)
	lat := strings.TrimSpace(latest)
	if cur == "" || cur == "dev" {
		return true, false
	}
	cmp, ok := CompareVersions(cur, lat)
	if !ok {
		return cur != lat, false
	}
	return cmp < 0, true
}

func parseVersionParts(v string) ([3]int, error) {
	var out [3]int
	parts := strings.SplitN(v, "-", 2)
	fields := strings.Split(parts[0], ".")
	if len(fields) < 1 || len(fields) > 3 {
		return out, fmt.Errorf("invalid version %q", v)
	}
	for i := 0; i < 3; i++ {
		if i >= len(fields) {
			out[i] = 0
			continue
		}
		n, err := strconv.Atoi(fields[i])
		if err != nil || n < 0 {
			return out, fmt.Errorf("invalid version %q", v)
		}
		out[i] = n
	}
	return out, nil
}
