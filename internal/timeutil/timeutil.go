// Package timeutil holds the tolerant timestamp parsing and countdown
// formatting shared by the normalization boundary and the web layer.
package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

// Layouts accepted by ParseTimestamp, tried in order. The admin API delivers a
// mix of RFC3339 and SQL-style "YYYY-MM-DD HH:MM[:SS]" strings.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a timestamp string from any of the known remote
// formats. Returns false for empty or unparseable input; callers treat that
// as "absent" rather than an error.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	// Some feeds deliver epoch seconds or milliseconds as strings.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromUnix(n), true
	}
	return time.Time{}, false
}

// FromUnix converts an epoch number to a time, treating values of twelve or
// more digits as milliseconds.
func FromUnix(n int64) time.Time {
	if n >= 1e12 || n <= -1e12 {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

// DateOnly truncates a time to its calendar day, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b.In(a.Location())))
}

// FormatRemaining renders a countdown duration as "Nd HH:MM" when a day or
// more remains, otherwise "HH:MM:SS". Negative durations render as zero.
func FormatRemaining(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	days := total / 86400
	rem := total % 86400
	h := rem / 3600
	rem %= 3600
	m := rem / 60
	s := rem % 60
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d", days, h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
