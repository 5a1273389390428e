package display_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-client/internal/display"
)

func TestFormatLocalTime(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	cases := []struct {
		ts       string
		loc      *time.Location
		expected string
	}{
		{"2024-01-15T20:30:00Z", newYork, "03:30 PM"},
		{"2024-07-15T20:30:00Z", newYork, "04:30 PM"},
		{"2024-01-15T15:00:00Z", tokyo, "12:00 AM"},
		{"2024-01-15T03:05:00Z", tokyo, "12:05 PM"},
		{"2024-01-15T20:30:45.123Z", time.UTC, "08:30 PM"},
		{"2024-01-15T10:00:00+02:00", time.UTC, "08:00 AM"},
	}

	for _, tc := range cases {
		got, err := display.FormatLocalTime(tc.ts, tc.loc)
		require.NoError(t, err, tc.ts)
		assert.Equal(t, tc.expected, got, tc.ts)
	}
}

func TestFormatLocalTimeStableAcrossRuns(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := display.FormatLocalTime("2024-01-15T20:30:00Z", newYork)
		require.NoError(t, err)
		assert.Equal(t, "03:30 PM", got)
	}
}

func TestFormatLocalTimeInvalid(t *testing.T) {
	_, err := display.FormatLocalTime("15/01/2024 20:30", time.UTC)

	assert.Error(t, err)
}

func TestToFixed(t *testing.T) {
	cases := []struct {
		v        float64
		digits   int
		expected string
	}{
		{21.46, 1, "21.5"},
		{3, 1, "3.0"},
		{0.25, 1, "0.3"},
		{0.05, 1, "0.1"},
		{62.5, 0, "63"},
		{62.4, 0, "62"},
		{99.5, 0, "100"},
		{9.96, 1, "10.0"},
		{1.005, 2, "1.00"},
		{-3.25, 1, "-3.3"},
		{-0.04, 1, "-0.0"},
		{0, 0, "0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, display.ToFixed(tc.v, tc.digits), "%v to %d digits", tc.v, tc.digits)
	}
}
