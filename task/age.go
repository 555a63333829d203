package task

import (
	"time"

	internalage "github.com/tasknest/tasknest/internal/age"
)

// AgeData computes the display age and whether timing data exists.
func AgeData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.StartedAt, now)
}

// DurationData computes the display duration and whether timing data exists.
// ACTIVE tasks measure against now; finished tasks measure against the time
// they left ACTIVE.
func DurationData(item Task, now time.Time) (time.Duration, bool) {
	finishedAt := time.Time{}
	if item.FinishedAt != nil {
		finishedAt = *item.FinishedAt
	}

	return internalage.DurationData(item.StartedAt, finishedAt, item.Status == StatusActive, now)
}
