package ctl

import (
	"fmt"
	"time"
)

// ParsePauseTarget interprets the user-supplied pause target: either a
// duration such as "25m" or "1h30m" counted from now, or a wall-clock time
// such as "15:04" meaning the next occurrence of that time.
func ParsePauseTarget(value string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(value); err == nil {
		if d <= 0 {
			return time.Time{}, fmt.Errorf("pause duration %q must be positive", value)
		}

		return now.Add(d), nil
	}

	clock, err := time.ParseInLocation("15:04", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pause target %q: expected a duration or HH:MM", value)
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
	if !target.After(now) {
		target = target.Add(24 * time.Hour)
	}

	return target, nil
}
