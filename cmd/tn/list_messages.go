package main

import (
	"fmt"

	"github.com/tasknest/tasknest/view"
)

func taskEmptyListMessage(total int, filter view.Filter) string {
	if total == 0 {
		return "No tasks found."
	}

	if filter == view.FilterAll {
		return "No tasks found."
	}

	return fmt.Sprintf("No tasks in the %s view. Use --all to include every status.", filter)
}
