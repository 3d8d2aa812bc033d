package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("2026-01-15")
	require.NoError(t, err)
	require.Equal(t, want, got)

	// RFC3339 timestamps are truncated to their calendar date.
	got, err = ParseDate("2026-01-15T14:30:00Z")
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = ParseDate("  2026-01-15 ")
	require.NoError(t, err)
	require.Equal(t, want, got)

	for _, bad := range []string{"", "   ", "15/01/2026", "2026-13-40", "tomorrow"} {
		_, err := ParseDate(bad)
		require.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestNightsBetween(t *testing.T) {
	ci := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 2, NightsBetween(ci, ci.AddDate(0, 0, 2)))
	require.Equal(t, 0, NightsBetween(ci, ci))

	// Time-of-day noise does not change the night count.
	require.Equal(t, 1, NightsBetween(ci.Add(23*time.Hour), ci.AddDate(0, 0, 1)))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "2026-01-05", FormatDate(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)))
}
