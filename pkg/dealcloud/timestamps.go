package dealcloud

import (
	"fmt"
	"time"
)

// timestampLayouts are tried in order. Values without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an RFC 3339 timestamp, a zone-less ISO 8601
// timestamp, or a plain YYYY-MM-DD date.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// FormatTimestamp renders t in UTC using RFC 3339 with a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DaysAgo returns the timestamp that lies the given number of days before now.
func DaysAgo(now time.Time, days int) string {
	return FormatTimestamp(now.AddDate(0, 0, -days))
}
