package utils

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned for date strings that parse as neither
// "2006-01-02" nor RFC3339. Callers surface it as an "invalid date" result
// instead of a generic system error.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ParseDate parses a date string and truncates it to midnight UTC.
// RFC3339 timestamps are accepted for frontends that send full timestamps.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDateFormat
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOnly(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOnly(t), nil
	}
	return time.Time{}, ErrInvalidDateFormat
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the number of nights in [checkIn, checkOut).
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
