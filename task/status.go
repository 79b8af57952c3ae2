package task

import "time"

// IsExpired reports whether now is strictly after the expiry time.
func IsExpired(now, expiresAt time.Time) bool {
	return now.After(expiresAt)
}

// AllDone reports whether a non-empty checklist is entirely done.
// An empty checklist is never all done.
func AllDone(bullets []Bullet) bool {
	if len(bullets) == 0 {
		return false
	}
	for _, b := range bullets {
		if !b.Done {
			return false
		}
	}
	return true
}

// AnyDone reports whether at least one bullet is done.
func AnyDone(bullets []Bullet) bool {
	for _, b := range bullets {
		if b.Done {
			return true
		}
	}
	return false
}

// Evaluate derives a status from the clock and the checklist.
// Expiry dominates completion.
func Evaluate(now, expiresAt time.Time, bullets []Bullet) Status {
	switch {
	case IsExpired(now, expiresAt):
		return StatusExpired
	case AllDone(bullets):
		return StatusCompleted
	case AnyDone(bullets):
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// IsDeletable reports whether the deletion window has opened. The window
// opens strictly after expiry plus DeletionGrace.
func IsDeletable(now, expiresAt time.Time) bool {
	return now.After(expiresAt.Add(DeletionGrace))
}

// Refresh recomputes and stores the task's status.
func (t *Task) Refresh(now time.Time) Status {
	t.Status = Evaluate(now, t.ExpiresAt, t.Bullets)
	return t.Status
}

// Locked refreshes the status and reports whether the task rejects edits.
func (t *Task) Locked(now time.Time) bool {
	return t.Refresh(now).IsLocked()
}

// Deletable reports whether the task may be deleted at now.
func (t *Task) Deletable(now time.Time) bool {
	return IsDeletable(now, t.ExpiresAt)
}
