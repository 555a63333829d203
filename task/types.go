// Package task implements a hierarchical task tracker backed by SQLite.
//
// Tasks form a forest: a task may name a parent task, and the parent must
// exist and be ACTIVE at creation time. That check happens only at
// creation. Changing a parent's status later never touches its children,
// so a COMPLETED task can still have ACTIVE children.
//
// The public API mirrors the CLI commands:
//   - Create, UpdateStatus, Complete, Abandon, Clear, Reactivate for task lifecycle
//   - Get, All, Count, Counts for querying
//   - Schema, Reset for administration
//
// Every operation runs in its own exclusive critical section and commits
// before returning, so a successful call is immediately visible to later
// reads, including reads after reopening the store.
package task

// Status represents the state of a task.
type Status string

const (
	// StatusActive indicates the task is in progress.
	StatusActive Status = "ACTIVE"

	// StatusCompleted indicates the task finished successfully.
	StatusCompleted Status = "COMPLETED"

	// StatusAbandoned indicates the task was given up on.
	StatusAbandoned Status = "ABANDONED"

	// StatusClear indicates the task is hidden from day-to-day listings.
	StatusClear Status = "CLEAR"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusActive, StatusCompleted, StatusAbandoned, StatusClear}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsFinished returns true when a status marks the end of work on a task.
func (s Status) IsFinished() bool {
	switch s {
	case StatusCompleted, StatusAbandoned, StatusClear:
		return true
	default:
		return false
	}
}

// MaxDescriptionLength is the maximum allowed length for a task
// description, counted in runes.
const MaxDescriptionLength = 500

// IDPtr returns a pointer to the provided task ID.
func IDPtr(id int64) *int64 {
	return &id
}
