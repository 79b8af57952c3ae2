package task

import (
	"strings"

	internalstrings "github.com/amonks/tt/internal/strings"
	"github.com/amonks/tt/internal/validation"
)

// legacyStatuses maps display strings written by older versions of the file.
var legacyStatuses = map[string]Status{
	"not started":    StatusNotStarted,
	"in progress":    StatusInProgress,
	"in progress...": StatusInProgress,
}

// ParsePriority normalizes user or file input into a priority.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeLowerTrimSpace(value))
	if err := ValidatePriority(priority); err != nil {
		return "", err
	}
	return priority, nil
}

// ParseStatus normalizes user or file input into a status.
func ParseStatus(value string) (Status, error) {
	normalized := internalstrings.NormalizeLowerTrimSpace(value)
	if legacy, ok := legacyStatuses[normalized]; ok {
		return legacy, nil
	}
	status := Status(strings.ReplaceAll(normalized, " ", "_"))
	if !status.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, Status(value), ValidStatuses())
	}
	return status, nil
}
