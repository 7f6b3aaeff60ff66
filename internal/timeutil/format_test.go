package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestFormatCountdown verifies HH:MM:SS rendering including the rounding of
// near-complete seconds and the clamping of negative input.
func TestFormatCountdown(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]string{
		0:                                  "00:00:00",
		5 * time.Second:                    "00:00:05",
		9*time.Second + 700*time.Millisecond: "00:00:10",
		9*time.Second + 400*time.Millisecond: "00:00:09",
		25 * time.Minute:                   "00:25:00",
		3*time.Hour + 61*time.Second:       "03:01:01",
		-3 * time.Second:                   "00:00:00",
	}

	for input, expected := range cases {
		require.Equal(t, expected, FormatCountdown(input), "input %s", input)
	}
}

// TestFormatEndTime verifies that the date appears only when the end falls on
// another calendar day.
func TestFormatEndTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

	require.Equal(t, "10:30", FormatEndTime(now.Add(30*time.Minute), now))
	require.Equal(t, "2025-01-02 09:00", FormatEndTime(now.Add(23*time.Hour), now))

	// Just before midnight stays on the same day.
	require.Equal(t, "23:59", FormatEndTime(time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC), now))
}
