package main

import (
	"fmt"

	"github.com/tasknest/tasknest/task"
)

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task) {
	fmt.Printf("ID:       %d\n", t.ID)
	fmt.Printf("Status:   %s\n", t.Status)

	if t.ParentID != nil {
		fmt.Printf("Parent:   %d\n", *t.ParentID)
	}

	fmt.Printf("Created:  %s\n", t.StartedAt.Format("2006-01-02 15:04:05"))

	if t.FinishedAt != nil {
		fmt.Printf("Finished: %s\n", t.FinishedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Printf("\nDescription:\n%s\n", formatTaskDescription(t.Description))
}

const taskDetailLineWidth = 80

func formatTaskDescription(value string) string {
	return renderMarkdownOrDash(value, taskDetailLineWidth)
}
