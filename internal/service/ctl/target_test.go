package ctl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParsePauseTarget covers durations, clock times and invalid input.
func TestParsePauseTarget(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	// Duration counted from now.
	target, err := ParsePauseTarget("25m", now)
	require.NoError(t, err)
	require.Equal(t, now.Add(25*time.Minute), target)

	// Negative duration.
	_, err = ParsePauseTarget("-5m", now)
	require.Error(t, err)

	// Clock time later today.
	target, err = ParsePauseTarget("10:30", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC), target)

	// Clock time already past rolls to tomorrow.
	target, err = ParsePauseTarget("09:00", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC), target)

	// Garbage.
	_, err = ParsePauseTarget("later", now)
	require.Error(t, err)
}
