package main

import (
	"fmt"
	"strings"
)

func taskEmptyListMessage(total int, status string, includeAll bool, hasExpired bool) string {
	if total == 0 {
		return "No tasks found."
	}

	status = strings.TrimSpace(status)
	if status != "" {
		return fmt.Sprintf("No tasks found with status %s.", strings.ToLower(status))
	}

	if !includeAll && hasExpired {
		return "No active tasks found. Use --all to include expired tasks."
	}

	return "No tasks found."
}
