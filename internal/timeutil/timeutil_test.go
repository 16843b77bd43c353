package timeutil_test

import (
	"testing"
	"time"

	"github.com/catalodge/roomboard/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampFormats(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-10T11:30:00Z", time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)},
		{"2026-03-10T11:30:00", time.Date(2026, 3, 10, 11, 30, 0, 0, time.Local)},
		{"2026-03-10 11:30:00", time.Date(2026, 3, 10, 11, 30, 0, 0, time.Local)},
		{"2026-03-10T11:30", time.Date(2026, 3, 10, 11, 30, 0, 0, time.Local)},
		{"2026-03-10 11:30", time.Date(2026, 3, 10, 11, 30, 0, 0, time.Local)},
		{"2026-03-10", time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)},
	}
	for _, c := range cases {
		got, ok := timeutil.ParseTimestamp(c.in)
		require.Truef(t, ok, "expected %q to parse", c.in)
		assert.Truef(t, c.want.Equal(got), "input %q: got %v, want %v", c.in, got, c.want)
	}
}

func TestParseTimestampEpoch(t *testing.T) {
	got, ok := timeutil.ParseTimestamp("1767225600")
	require.True(t, ok)
	assert.Equal(t, int64(1767225600), got.Unix())

	// Twelve or more digits are milliseconds.
	got, ok = timeutil.ParseTimestamp("1767225600000")
	require.True(t, ok)
	assert.Equal(t, int64(1767225600), got.Unix())
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "not a date", "10/03/2026"} {
		_, ok := timeutil.ParseTimestamp(s)
		assert.Falsef(t, ok, "expected %q not to parse", s)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.True(t, timeutil.SameDay(a, b))
	assert.False(t, timeutil.SameDay(a, c))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "00:45:00", timeutil.FormatRemaining(45*time.Minute))
	assert.Equal(t, "02:05:09", timeutil.FormatRemaining(2*time.Hour+5*time.Minute+9*time.Second))
	assert.Equal(t, "1d 02:00", timeutil.FormatRemaining(26*time.Hour))
	assert.Equal(t, "00:00:00", timeutil.FormatRemaining(-time.Minute))
}
