package importer

import (
	"strings"
	"time"
)

// dateFormats is the ordered list of layouts tried when parsing a date
// cell; the first layout that parses wins. Trackers come from Excel exports
// and hand-edited CSVs, so several regional conventions appear.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06", // excelize's default short-date rendering
	"02.01.2006",
	"2-Jan-2006",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate attempts each known layout in order. The boolean is false when
// no layout matched; the caller decides whether that is an issue.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			// Keep the date only; time-of-day from datetime cells is noise.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
