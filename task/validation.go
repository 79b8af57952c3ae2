package task

import (
	"errors"
	"fmt"
	"time"

	internalstrings "github.com/amonks/tt/internal/strings"
	"github.com/amonks/tt/internal/validation"
)

var (
	// ErrValidation is the parent of every input validation error.
	ErrValidation = errors.New("invalid input")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds maximum length", ErrValidation)

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)

	// ErrInvalidStatus is returned when an unknown status is provided.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrValidation)

	// ErrMissingExpiry is returned when no expiry time is provided.
	ErrMissingExpiry = fmt.Errorf("%w: expiry date is required", ErrValidation)

	// ErrEmptyBullet is returned when a checklist item has no text.
	ErrEmptyBullet = fmt.Errorf("%w: bullet text cannot be empty", ErrValidation)

	// ErrTaskNotFound is returned when no task has the given ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskLocked is returned when mutating a completed or expired task.
	ErrTaskLocked = errors.New("task is locked")

	// ErrNoBullets is returned when completing a bullet on a task without any.
	ErrNoBullets = errors.New("task has no bullets")

	// ErrBulletIndexOutOfRange is returned for a bullet index outside the checklist.
	ErrBulletIndexOutOfRange = errors.New("bullet number out of range")

	// ErrNotDeletable is returned when deleting before expiry plus the grace period.
	ErrNotDeletable = errors.New("task cannot be deleted until 5 minutes after expiry")

	// ErrPersistence is returned when the task file cannot be read or written.
	ErrPersistence = errors.New("task storage failure")
)

// Kind is a stable category for errors returned by the store.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindLocked          Kind = "locked"
	KindNoBullets       Kind = "no_bullets"
	KindIndexOutOfRange Kind = "index_out_of_range"
	KindNotDeletable    Kind = "not_deletable"
	KindPersistence     Kind = "persistence"
	KindUnknown         Kind = "unknown"
)

// KindOf classifies an error. A nil error has an empty kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrTaskNotFound):
		return KindNotFound
	case errors.Is(err, ErrTaskLocked):
		return KindLocked
	case errors.Is(err, ErrNoBullets):
		return KindNoBullets
	case errors.Is(err, ErrBulletIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrNotDeletable):
		return KindNotDeletable
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindUnknown
	}
}

// ExitCode returns the process exit status used by the CLI for this kind.
func (k Kind) ExitCode() int {
	switch k {
	case "":
		return 0
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindLocked:
		return 4
	case KindNoBullets:
		return 5
	case KindIndexOutOfRange:
		return 6
	case KindNotDeletable:
		return 7
	case KindPersistence:
		return 8
	default:
		return 1
	}
}

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if internalstrings.IsBlank(title) {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, priority, ValidPriorities())
	}
	return nil
}

// ValidateExpiry checks that an expiry time was provided.
func ValidateExpiry(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return ErrMissingExpiry
	}
	return nil
}

// ValidateBullets checks that every bullet has text.
func ValidateBullets(bullets []Bullet) error {
	for i, b := range bullets {
		if err := ValidateBulletText(b.Text); err != nil {
			return fmt.Errorf("bullet %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateBulletText checks the text of a single bullet.
func ValidateBulletText(text string) error {
	if internalstrings.IsBlank(text) {
		return ErrEmptyBullet
	}
	return nil
}
