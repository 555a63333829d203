package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tasknest/tasknest/internal/ui"
	"github.com/tasknest/tasknest/task"
	"github.com/tasknest/tasknest/view"
)

// printTaskTable prints view rows in a table format.
func printTaskTable(rows []view.Row, now time.Time) {
	if len(rows) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(rows, now))
}

func formatTaskTable(rows []view.Row, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "DURATION", "DESCRIPTION"}, len(rows))

	for _, row := range rows {
		description := indentTableCell(ui.TruncateTableCell(row.Description), row.Depth)
		builder.AddRow([]string{
			strconv.FormatInt(row.ID, 10),
			ui.RenderStatus(string(row.Status)),
			formatTaskAge(row.Task, now),
			formatTaskDuration(row.Task, now),
			description,
		})
	}

	return builder.String()
}

// taskIndentWidth is the number of spaces per nesting level in list output.
const taskIndentWidth = 2

func indentTableCell(value string, depth int) string {
	if depth <= 0 {
		return value
	}
	return strings.Repeat(" ", depth*taskIndentWidth) + value
}

func formatTaskAge(item task.Task, now time.Time) string {
	age, ok := task.AgeData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(age)
}

func formatTaskDuration(item task.Task, now time.Time) string {
	duration, ok := task.DurationData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(duration)
}

// formatTaskSummary summarizes listed rows, like "3 tasks: 2 ACTIVE, 1 CLEAR".
func formatTaskSummary(rows []view.Row) string {
	counts := make(map[task.Status]int, len(rows))
	for _, row := range rows {
		counts[row.Status]++
	}

	parts := make([]string, 0, len(counts))
	for _, status := range task.ValidStatuses() {
		if counts[status] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
	}

	label := "tasks"
	if len(rows) == 1 {
		label = "task"
	}
	return fmt.Sprintf("%d %s: %s", len(rows), label, strings.Join(parts, ", "))
}
