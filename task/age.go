package task

import (
	"time"

	internalage "github.com/amonks/tt/internal/age"
)

// AgeData computes how long ago the task was created.
func AgeData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// DueData computes the signed time remaining until expiry. It is negative
// once the task has expired.
func DueData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.UntilData(item.ExpiresAt, now)
}
