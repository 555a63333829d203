package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tasknest/tasknest/internal/validation"
)

var (
	// ErrEmptyDescription is returned when a task description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrDescriptionTooLong is returned when a description exceeds MaxDescriptionLength.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrParentNotFound is returned when the requested parent task doesn't exist.
	ErrParentNotFound = errors.New("parent task not found")

	// ErrParentNotActive is returned when the requested parent task is not ACTIVE.
	ErrParentNotActive = errors.New("parent task is not active")
)

// Error kinds label API failures for clients.
const (
	KindValidation      = "validation"
	KindTaskNotFound    = "task_not_found"
	KindParentNotFound  = "parent_not_found"
	KindParentNotActive = "parent_not_active"
	KindInternal        = "internal"
)

// Kind classifies an error into an API error kind.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		return KindTaskNotFound
	case errors.Is(err, ErrParentNotFound):
		return KindParentNotFound
	case errors.Is(err, ErrParentNotActive):
		return KindParentNotActive
	case errors.Is(err, ErrEmptyDescription),
		errors.Is(err, ErrDescriptionTooLong),
		errors.Is(err, ErrInvalidStatus):
		return KindValidation
	default:
		return KindInternal
	}
}

// ValidateDescription checks if the description is valid. Surrounding
// whitespace does not count toward the length limit.
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ErrEmptyDescription
	}
	if length := utf8.RuneCountInString(trimmed); length > MaxDescriptionLength {
		return fmt.Errorf("%w: %d > %d", ErrDescriptionTooLong, length, MaxDescriptionLength)
	}
	return nil
}

// ValidateStatus checks if the status is a known value.
func ValidateStatus(status Status) error {
	if !status.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidStatus, status, ValidStatuses())
	}
	return nil
}
