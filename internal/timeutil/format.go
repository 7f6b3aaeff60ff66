// Package timeutil holds the time-rendering helpers shared by session
// summaries and the control CLI output.
package timeutil

import (
	"fmt"
	"time"
)

// countdownRounding pulls near-complete seconds up so a deadline armed for
// ten seconds and queried a few milliseconds later still reads 00:00:10.
const countdownRounding = 400 * time.Millisecond

// FormatCountdown renders a remaining duration as HH:MM:SS. Negative input
// is treated as zero.
func FormatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}

	totalSeconds := int64((remaining + countdownRounding) / time.Second)

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatEndTime renders an absolute end time, including the date only when
// it does not fall on the same calendar day as now.
func FormatEndTime(endsAt, now time.Time) string {
	endYear, endMonth, endDay := endsAt.Date()
	nowYear, nowMonth, nowDay := now.Date()

	if endYear == nowYear && endMonth == nowMonth && endDay == nowDay {
		return endsAt.Format("15:04")
	}

	return endsAt.Format("2006-01-02 15:04")
}
