package age

import "time"

// AgeData computes display age since startedAt and whether timing data exists.
func AgeData(startedAt time.Time, now time.Time) (time.Duration, bool) {
	if startedAt.IsZero() {
		return 0, false
	}
	return clampNonNegative(now.Sub(startedAt)), true
}

// DurationData computes display duration and whether timing data exists.
// Active items measure against now; finished items measure against finishedAt.
func DurationData(startedAt time.Time, finishedAt time.Time, active bool, now time.Time) (time.Duration, bool) {
	if startedAt.IsZero() {
		return 0, false
	}

	if active {
		return clampNonNegative(now.Sub(startedAt)), true
	}

	if finishedAt.IsZero() {
		return 0, false
	}
	return clampNonNegative(finishedAt.Sub(startedAt)), true
}

func clampNonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
