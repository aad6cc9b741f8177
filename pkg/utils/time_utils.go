package utils

import "time"

const isoDateLayout = "2006-01-02"

// FormatISODate renders t as YYYY-MM-DD, or "" for the zero time so
// callers decide how to render missing dates.
func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoDateLayout)
}

// ParseISODate parses a YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(isoDateLayout, s)
	return t, err == nil
}
