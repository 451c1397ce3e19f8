// Package main provides the entry point for the chime CLI.
package main

import (
	"fmt"
	"strconv"
	"time"
)

// parseTimerDuration parses a timer duration argument.
// Accepts:
//   - Bare numbers: "5", "25" (minutes)
//   - Go durations: "90s", "5m", "1h30m"
//
// Returns an error for zero, negative, or unparseable values.
func parseTimerDuration(value string) (time.Duration, error) {
	if mins, err := strconv.Atoi(value); err == nil {
		if mins <= 0 {
			return 0, fmt.Errorf("duration must be positive, got %d", mins)
		}
		return time.Duration(mins) * time.Minute, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q; use minutes (5) or a duration (90s, 1h30m)", value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", value)
	}
	return d, nil
}

// formatClockDuration renders a duration as MM:SS or H:MM:SS for the
// timer and stopwatch readouts.
func formatClockDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
