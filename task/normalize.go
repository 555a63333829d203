package task

import (
	"strings"

	internalstrings "github.com/tasknest/tasknest/internal/strings"
)

func normalizeStatus(status Status) Status {
	return Status(internalstrings.NormalizeUpperTrimSpace(string(status)))
}

// normalizeStatusInput uppercases and validates a caller-provided status.
func normalizeStatusInput(status Status) (Status, error) {
	normalized := normalizeStatus(status)
	if err := ValidateStatus(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// normalizeDescriptionInput trims and validates a caller-provided description.
func normalizeDescriptionInput(description string) (string, error) {
	trimmed := internalstrings.NormalizeNewlines(description)
	trimmed = strings.TrimSpace(trimmed)
	if err := ValidateDescription(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
