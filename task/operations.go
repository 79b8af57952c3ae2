package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tt/internal/validation"
)

// NextID returns one more than the highest ID in the store, or 1 when the
// store is empty. IDs freed by deleting the highest task are reused.
func (s *Store) NextID() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// AddOptions configures a new task.
type AddOptions struct {
	// Description provides additional context.
	Description string

	// ExpiresAt is the deadline. Required.
	ExpiresAt time.Time

	// Priority defaults to PriorityLow when empty.
	Priority Priority

	// Bullets is the initial checklist.
	Bullets []Bullet
}

// Add creates a new task with the given title.
func (s *Store) Add(title string, opts AddOptions) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateExpiry(opts.ExpiresAt); err != nil {
		return nil, err
	}
	if opts.Priority == "" {
		opts.Priority = PriorityLow
	}
	if err := ValidatePriority(opts.Priority); err != nil {
		return nil, err
	}
	if err := ValidateBullets(opts.Bullets); err != nil {
		return nil, err
	}

	now := s.now()
	t := Task{
		ID:          s.NextID(),
		Title:       title,
		Description: opts.Description,
		CreatedAt:   now,
		ExpiresAt:   opts.ExpiresAt,
		Priority:    opts.Priority,
		Bullets:     append([]Bullet{}, opts.Bullets...),
	}
	t.Refresh(now)

	s.tasks = append(s.tasks, t)
	if err := s.save(); err != nil {
		return nil, err
	}

	s.logger.Info("added task", "id", t.ID, "status", t.Status)
	added := t.Clone()
	return &added, nil
}

// EditOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type EditOptions struct {
	Title       *string
	Description *string
	ExpiresAt   *time.Time
	Priority    *Priority
}

// Edit updates an unlocked task.
func (s *Store) Edit(id int, opts EditOptions) (*Task, error) {
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.ExpiresAt != nil {
		if err := ValidateExpiry(*opts.ExpiresAt); err != nil {
			return nil, err
		}
	}
	if opts.Priority != nil {
		if err := ValidatePriority(*opts.Priority); err != nil {
			return nil, err
		}
	}

	return s.mutate(id, func(t *Task) error {
		if opts.Title != nil {
			t.Title = *opts.Title
		}
		if opts.Description != nil {
			t.Description = *opts.Description
		}
		if opts.ExpiresAt != nil {
			t.ExpiresAt = *opts.ExpiresAt
		}
		if opts.Priority != nil {
			t.Priority = *opts.Priority
		}
		return nil
	})
}

// AddBullet appends a checklist item to an unlocked task.
func (s *Store) AddBullet(id int, text string) (*Task, error) {
	if err := ValidateBulletText(text); err != nil {
		return nil, err
	}
	return s.mutate(id, func(t *Task) error {
		t.Bullets = append(t.Bullets, Bullet{Text: text})
		return nil
	})
}

// MarkBulletDone completes the bullet at the zero-based index. The returned
// bool is false when the bullet was already done, in which case nothing is
// written.
func (s *Store) MarkBulletDone(id int, index int) (*Task, bool, error) {
	changed := false
	t, err := s.mutate(id, func(t *Task) error {
		if len(t.Bullets) == 0 {
			return fmt.Errorf("%w: task %d", ErrNoBullets, id)
		}
		if index < 0 || index >= len(t.Bullets) {
			return fmt.Errorf("%w: %d not in 1-%d", ErrBulletIndexOutOfRange, index+1, len(t.Bullets))
		}
		changed = t.Bullets[index].MarkDone()
		if !changed {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return t, changed, nil
}

// errUnchanged lets a mutation finish without saving.
var errUnchanged = errors.New("unchanged")

// mutate refreshes the task's status, rejects locked tasks, applies fn,
// recomputes status, and saves.
func (s *Store) mutate(id int, fn func(*Task) error) (*Task, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &s.tasks[i]
	if t.Locked(now) {
		return nil, fmt.Errorf("%w: task %d is %s", ErrTaskLocked, id, t.Status)
	}

	previous := t.Clone()
	if err := fn(t); err != nil {
		if errors.Is(err, errUnchanged) {
			unchanged := t.Clone()
			return &unchanged, nil
		}
		return nil, err
	}
	t.Refresh(now)

	if err := s.save(); err != nil {
		return nil, err
	}

	if previous.Status != t.Status {
		s.logger.Info("task status changed", "id", id, "from", previous.Status, "to", t.Status)
	}
	updated := t.Clone()
	return &updated, nil
}

// Delete removes a task whose deletion window has opened.
func (s *Store) Delete(id int) (*Task, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := s.tasks[i]
	if !t.Deletable(now) {
		return nil, fmt.Errorf("%w: task %d is deletable after %s", ErrNotDeletable, id, t.ExpiresAt.Add(DeletionGrace).Format(time.RFC3339))
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if err := s.save(); err != nil {
		return nil, err
	}

	t.Refresh(now)
	s.logger.Info("deleted task", "id", id)
	return &t, nil
}

// Cleanup removes every deletable task, saves the remainder, and returns the
// removed tasks.
func (s *Store) Cleanup() ([]Task, error) {
	now := s.now()
	kept := make([]Task, 0, len(s.tasks))
	var removed []Task
	for _, t := range s.tasks {
		if t.Deletable(now) {
			t.Refresh(now)
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept

	if err := s.save(); err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		s.logger.Info("cleaned up expired tasks", "count", len(removed))
	}
	return removed, nil
}

// Show returns the task with the given ID.
func (s *Store) Show(id int) (*Task, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	s.tasks[i].Refresh(s.now())
	t := s.tasks[i].Clone()
	return &t, nil
}

// Search returns tasks whose title or description contains keyword,
// ignoring case, in store order.
func (s *Store) Search(keyword string) []Task {
	keyword = strings.ToLower(keyword)
	var matches []Task
	for _, t := range s.Tasks() {
		if strings.Contains(strings.ToLower(t.Title), keyword) ||
			strings.Contains(strings.ToLower(t.Description), keyword) {
			matches = append(matches, t)
		}
	}
	return matches
}

// ListFilter configures which tasks List returns.
type ListFilter struct {
	// Status filters by derived status (nil means any).
	Status *Status

	// Priority filters by priority (nil means any).
	Priority *Priority

	// IncludeExpired includes expired tasks when Status is nil.
	IncludeExpired bool
}

// List returns tasks matching the filter in store order.
func (s *Store) List(filter ListFilter) ([]Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, validation.FormatInvalidValueError(ErrInvalidStatus, *filter.Status, ValidStatuses())
	}
	if filter.Priority != nil {
		if err := ValidatePriority(*filter.Priority); err != nil {
			return nil, err
		}
	}

	var out []Task
	for _, t := range s.Tasks() {
		if filter.Status != nil {
			if t.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeExpired && t.Status == StatusExpired {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
