package task

import "time"

// Task represents a single task in the forest.
type Task struct {
	// ID is a unique integer identifier. IDs are assigned in increasing
	// order and never reused, even for tasks finished long ago.
	ID int64 `json:"id"`

	// Description is the task text (max 500 runes).
	Description string `json:"description"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// ParentID is the ID of the parent task (nil for root tasks).
	ParentID *int64 `json:"parent_id,omitempty"`

	// StartedAt is when the task was created.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the task last left ACTIVE (nil while active).
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
