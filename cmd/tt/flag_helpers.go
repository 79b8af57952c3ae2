package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/tt/task"
	"github.com/spf13/cobra"
)

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

func shouldUseEditor(hasFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasFlags {
		return false
	}
	return interactive
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := strings.TrimRight(string(input), "\r\n")
	return value, nil
}

// parseTaskID parses a task ID argument.
func parseTaskID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid task id %q", task.ErrValidation, value)
	}
	return id, nil
}

// parseBulletNumber parses a 1-based bullet number into a zero-based index.
func parseBulletNumber(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid bullet number %q", task.ErrValidation, value)
	}
	return n - 1, nil
}

// parseExpiry reads a deadline in the configured layout, falling back to the
// timestamp formats accepted in the task file.
func parseExpiry(value string, layout string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, task.ErrMissingExpiry
	}
	if layout != "" {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	parsed, err := task.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid expiry %q (use YYYY-MM-DD HH:MM)", task.ErrValidation, value)
	}
	return parsed, nil
}
