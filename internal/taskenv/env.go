// Package taskenv reads tt settings from the environment.
package taskenv

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// NowEnvVar pins the clock used by tt commands.
const NowEnvVar = "TT_NOW"

// StoreEnvVar overrides the task file location.
const StoreEnvVar = "TT_STORE"

var nowLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Now returns the time implied by the environment. When TT_NOW is unset the
// wall clock is used. Values without a zone are read in local time.
func Now() (time.Time, error) {
	value := strings.TrimSpace(os.Getenv(NowEnvVar))
	if value == "" {
		return time.Now(), nil
	}
	for _, layout := range nowLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q: expected RFC 3339 or YYYY-MM-DD HH:MM", NowEnvVar, value)
}

// StorePath returns the task file override from the environment, if any.
func StorePath() string {
	return strings.TrimSpace(os.Getenv(StoreEnvVar))
}
