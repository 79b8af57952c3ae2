package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amonks/tt/internal/ui"
	"github.com/amonks/tt/task"
)

func formatTaskTable(items []task.Task, now time.Time, layout string) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "BULLETS", "EXPIRES", "DUE", "TITLE"}, len(items))

	for _, t := range items {
		builder.AddRow([]string{
			strconv.Itoa(t.ID),
			ui.PriorityBadge(string(t.Priority)),
			ui.StatusBadge(string(t.Status)),
			formatBulletProgress(t),
			t.ExpiresAt.In(time.Local).Format(layout),
			formatTaskDue(t, now),
			ui.TruncateTableCell(t.Title),
		})
	}

	return builder.String()
}

func formatBulletProgress(t task.Task) string {
	if len(t.Bullets) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", t.DoneCount(), len(t.Bullets))
}

func formatTaskDue(item task.Task, now time.Time) string {
	if _, ok := task.DueData(item, now); !ok {
		return "-"
	}
	return ui.FormatDue(item.ExpiresAt, now)
}
