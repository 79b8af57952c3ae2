package task

import (
	"time"

	internalstrings "github.com/amonks/tt/internal/strings"
)

type dedupKey struct {
	title       string
	description string
	expiresAt   time.Time
}

func newDedupKey(t Task) dedupKey {
	return dedupKey{
		title:       internalstrings.NormalizeLowerTrimSpace(t.Title),
		description: internalstrings.NormalizeLowerTrimSpace(t.Description),
		// UTC strips the location and monotonic reading so that equal
		// instants compare equal as map keys.
		expiresAt: t.ExpiresAt.UTC(),
	}
}
