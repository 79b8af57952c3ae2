package ui

import (
	"fmt"
	"time"

	internalage "github.com/amonks/tt/internal/age"
)

// FormatDue returns a relative deadline like "in 2h", or "3m ago" once it
// has passed.
func FormatDue(then time.Time, now time.Time) string {
	remaining, ok := internalage.UntilData(then, now)
	if !ok {
		return "-"
	}
	if remaining < 0 {
		return FormatDurationShort(-remaining) + " ago"
	}
	return "in " + FormatDurationShort(remaining)
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
