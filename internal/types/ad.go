package types

import (
	"strconv"
	"strings"
)

// AdRecord is a single ad entry from an ads response payload. Upstream fields
// are optional and loosely typed, so records stay generic maps and callers go
// through the typed accessors below.
type AdRecord map[string]interface{}

// containerKeys are the payload keys checked, in order, for the ad list.
var containerKeys = []string{"data", "results"}

// ExtractAds returns the ad list from a parsed payload. The first key in
// containerKeys whose value is a list wins; list elements that are not objects
// are dropped. A missing or non-list container yields an empty result, not an
// error.
func ExtractAds(payload map[string]interface{}) []AdRecord {
	for _, key := range containerKeys {
		list, ok := payload[key].([]interface{})
		if !ok {
			continue
		}
		ads := make([]AdRecord, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]interface{}); ok {
				ads = append(ads, AdRecord(m))
			}
		}
		return ads
	}
	return nil
}

// ArchiveID returns the ad archive identifier as a string. Numeric ids are
// formatted without a decimal point; a missing id yields "".
func (a AdRecord) ArchiveID() string {
	return stringField(a["ad_archive_id"])
}

// PageName returns the page name, or "" if absent.
func (a AdRecord) PageName() string {
	return stringField(a["page_name"])
}

// StartEpoch returns the start_date epoch seconds if present and numeric.
func (a AdRecord) StartEpoch() (int64, bool) {
	return epochField(a["start_date"])
}

// EndEpoch returns the end_date epoch seconds if present and numeric.
func (a AdRecord) EndEpoch() (int64, bool) {
	return epochField(a["end_date"])
}

// StartDateString returns the ISO start_date_string, or "" if absent.
func (a AdRecord) StartDateString() string {
	s, _ := a["start_date_string"].(string)
	return s
}

// EndDateString returns the ISO end_date_string, or "" if absent.
func (a AdRecord) EndDateString() string {
	s, _ := a["end_date_string"].(string)
	return s
}

// IsActive reports whether the is_active flag is truthy. Upstream is not
// consistent about the type, so any non-zero, non-empty value counts.
func (a AdRecord) IsActive() bool {
	switch v := a["is_active"].(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return false
	}
}

func stringField(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// epochField accepts epoch seconds as a JSON number or a numeric string.
func epochField(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
