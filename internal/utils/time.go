package utils

import (
	"strings"
	"time"
)

// bookingLayouts are tried in order; zone-less layouts are read in the caller's location.
var bookingLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses booking datetime/timestamp strings.
func ParseInstant(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), true
	}
	for _, layout := range bookingLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SameMonth compares calendar year and month in loc.
func SameMonth(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameDay compares calendar dates in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// MonthStart returns the first instant of the month offset months away from t.
func MonthStart(t time.Time, offset int, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, loc)
}

// NowISO mirrors the JS toISOString() shape used by stored documents.
func NowISO(now time.Time) string {
	return now.UTC().Format("2006-01-02T15:04:05.000Z")
}

// FormatDateTime renders a booking instant for receipts.
func FormatDateTime(raw string, loc *time.Location) string {
	t, ok := ParseInstant(raw, loc)
	if !ok {
		return raw
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
