package ranking

import (
	"strings"
	"time"
)

// isoLayouts are tried in order when parsing date strings. Strings without an
// offset are taken as UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ResolveTimestamp derives a UTC timestamp from an optional epoch-seconds
// value and an optional ISO 8601 string. The epoch wins when it maps to a
// valid calendar time; otherwise the string is parsed (a trailing "Z" means
// UTC, same as "+00:00"). Failure on both yields ok=false, never an error.
func ResolveTimestamp(epoch int64, hasEpoch bool, iso string) (time.Time, bool) {
	if hasEpoch {
		t := time.Unix(epoch, 0).UTC()
		if t.Year() >= 1 && t.Year() <= 9999 {
			return t, true
		}
	}
	return ParseISO(iso)
}

// ParseISO parses an ISO 8601 datetime string into a UTC timestamp.
func ParseISO(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, iso)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
