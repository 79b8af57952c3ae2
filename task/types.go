// Package task implements a personal task tracker backed by a single JSON file.
//
// Tasks carry a checklist of bullets and an expiry time. Their status is never
// stored authoritatively: it is derived from the current time and the
// checklist, and it decides whether a task may still be edited or deleted.
//
// The public API mirrors the CLI commands:
//   - Add, Edit, AddBullet, MarkBulletDone for task lifecycle
//   - Delete, Cleanup for removal once the deletion window has opened
//   - Show, List, Search for querying
package task

import "time"

// Status represents the derived state of a task.
type Status string

const (
	// StatusNotStarted indicates no bullet has been completed yet.
	StatusNotStarted Status = "not_started"

	// StatusInProgress indicates at least one bullet is done.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates every bullet is done before expiry.
	StatusCompleted Status = "completed"

	// StatusExpired indicates the expiry time has passed.
	StatusExpired Status = "expired"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusExpired}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsLocked returns true when a task in this status rejects mutations.
func (s Status) IsLocked() bool {
	switch s {
	case StatusCompleted, StatusExpired:
		return true
	default:
		return false
	}
}

// Priority represents the importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// DeletionGrace is how long after expiry a task becomes deletable.
const DeletionGrace = 5 * time.Minute

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

// Placeholders used when a stored task is missing its title or description.
const (
	DefaultTitle       = "Untitled"
	DefaultDescription = "no description"
)
