package service

import (
	"strings"
	"time"
)

// Timestamp layouts accepted for recency comparison. Reviewers submit
// ISO-8601 strings; the stored string is never rewritten, only parsed for
// ordering.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareTimestamps orders two timestamp strings, parsing them when
// possible. When either side does not parse, comparison falls back to the
// raw strings, which matches lexicographic ordering for fixed-width
// ISO-8601 values.
func compareTimestamps(a, b string) int {
	ta, okA := parseTimestamp(a)
	tb, okB := parseTimestamp(b)
	if okA && okB {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
