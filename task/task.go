package task

import "time"

// Bullet is a single checklist item owned by a task.
type Bullet struct {
	// Text is the display text of the item.
	Text string `json:"text"`

	// Done records whether the item has been completed.
	Done bool `json:"done"`
}

// MarkDone completes the bullet. It returns false if it was already done.
func (b *Bullet) MarkDone() bool {
	if b.Done {
		return false
	}
	b.Done = true
	return true
}

// Task represents a single tracked task.
type Task struct {
	// ID is a positive integer assigned by the store.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// CreatedAt is when the task was added. It never changes.
	CreatedAt time.Time `json:"created_date"`

	// ExpiresAt is the deadline of the task.
	ExpiresAt time.Time `json:"expiry_date"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Status is the last computed status. Call Refresh before relying on it.
	Status Status `json:"status"`

	// Bullets is the ordered checklist.
	Bullets []Bullet `json:"bullets"`
}

// Clone returns a copy of the task that shares no bullets with the original.
func (t Task) Clone() Task {
	clone := t
	if t.Bullets != nil {
		clone.Bullets = append([]Bullet(nil), t.Bullets...)
	}
	return clone
}

// DoneCount returns how many bullets are done.
func (t Task) DoneCount() int {
	count := 0
	for _, b := range t.Bullets {
		if b.Done {
			count++
		}
	}
	return count
}
