package trello

import "time"

// Trello date fields are RFC3339 with millisecond precision, but payloads
// occasionally carry bare dates or nothing useful at all.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// parseDate attempts to parse a Trello date string. It returns nil when
// the string matches none of the known layouts; callers keep the raw
// string around instead of failing.
func parseDate(raw string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
