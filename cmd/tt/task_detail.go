package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tt/internal/markdown"
	internalstrings "github.com/amonks/tt/internal/strings"
	"github.com/amonks/tt/internal/ui"
	"github.com/amonks/tt/task"
	"github.com/muesli/reflow/wordwrap"
)

const taskDetailLineWidth = 80

// formatTaskDetail renders detailed information about a task.
func formatTaskDetail(t task.Task, now time.Time, layout string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s       %d\n", ui.Label("ID:"), t.ID)
	fmt.Fprintf(&b, "%s    %s\n", ui.Label("Title:"), t.Title)
	fmt.Fprintf(&b, "%s   %s\n", ui.Label("Status:"), ui.StatusBadge(string(t.Status)))
	fmt.Fprintf(&b, "%s %s\n", ui.Label("Priority:"), ui.PriorityBadge(string(t.Priority)))
	fmt.Fprintf(&b, "%s  %s %s\n", ui.Label("Created:"), t.CreatedAt.In(time.Local).Format(layout),
		ui.Muted("("+formatTaskAge(t, now)+")"))
	fmt.Fprintf(&b, "%s  %s %s\n", ui.Label("Expires:"), t.ExpiresAt.In(time.Local).Format(layout),
		ui.Muted("("+formatTaskDue(t, now)+")"))

	fmt.Fprintf(&b, "\n%s\n%s\n", ui.Label("Description:"), formatTaskDescription(t.Description))

	fmt.Fprintf(&b, "\n%s\n", ui.Label("Bullets:"))
	b.WriteString(formatBullets(t.Bullets, taskDetailLineWidth))
	return b.String()
}

func formatTaskAge(t task.Task, now time.Time) string {
	age, ok := task.AgeData(t, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(age) + " ago"
}

func formatTaskDescription(value string) string {
	rendered := markdown.Render(taskDetailLineWidth, 2, []byte(value))
	if len(rendered) == 0 {
		return "  -"
	}
	return string(rendered)
}

// formatBullets numbers checklist items from 1 and wraps long text under its
// marker.
func formatBullets(bullets []task.Bullet, width int) string {
	if len(bullets) == 0 {
		return "  No bullets\n"
	}

	var b strings.Builder
	for i, bullet := range bullets {
		state := "not complete"
		if bullet.Done {
			state = "complete"
		}
		marker := fmt.Sprintf("  %d. ", i+1)
		text := wordwrap.String(bullet.Text+" - "+state, width-len(marker))
		lines := strings.Split(text, "\n")
		b.WriteString(marker + lines[0] + "\n")
		if len(lines) > 1 {
			rest := internalstrings.IndentBlock(strings.Join(lines[1:], "\n"), len(marker))
			b.WriteString(rest + "\n")
		}
	}
	return b.String()
}
