package task

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     error
	}{
		{"valid short", "Fix bug", nil},
		{"valid long", strings.Repeat("a", MaxDescriptionLength), nil},
		{"valid long unicode", strings.Repeat("a", MaxDescriptionLength-1) + "é", nil},
		{"valid after trim", "  " + strings.Repeat("a", MaxDescriptionLength) + "  ", nil},
		{"empty", "", ErrEmptyDescription},
		{"whitespace", "   ", ErrEmptyDescription},
		{"too long", strings.Repeat("a", MaxDescriptionLength+1), ErrDescriptionTooLong},
		{"too long unicode", strings.Repeat("a", MaxDescriptionLength) + "é", ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.description)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDescription(%q) unexpected error: %v", tt.description, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateDescription(%q) = %v, want %v", tt.description, err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	for _, status := range ValidStatuses() {
		if err := ValidateStatus(status); err != nil {
			t.Errorf("ValidateStatus(%q) unexpected error: %v", status, err)
		}
	}

	if err := ValidateStatus(Status("bogus")); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ValidateStatus(bogus) = %v, want ErrInvalidStatus", err)
	}
	if err := ValidateStatus(Status("")); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ValidateStatus(empty) = %v, want ErrInvalidStatus", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty description", ErrEmptyDescription, KindValidation},
		{"description too long", fmt.Errorf("%w: 501 > 500", ErrDescriptionTooLong), KindValidation},
		{"invalid status", fmt.Errorf("%w: %q", ErrInvalidStatus, "bogus"), KindValidation},
		{"task not found", fmt.Errorf("%w: 7", ErrTaskNotFound), KindTaskNotFound},
		{"parent not found", fmt.Errorf("%w: 7", ErrParentNotFound), KindParentNotFound},
		{"parent not active", fmt.Errorf("%w: 7 is COMPLETED", ErrParentNotActive), KindParentNotActive},
		{"unknown error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
