// Package view maintains cached, filtered listings of the task forest.
//
// A view is the full forest in depth-first order with some statuses
// filtered out. Depth always comes from the full forest, so a task whose
// ancestors are filtered out still appears at its true depth.
package view

import (
	"errors"

	internalstrings "github.com/tasknest/tasknest/internal/strings"
	"github.com/tasknest/tasknest/internal/validation"
	"github.com/tasknest/tasknest/task"
)

// Filter selects which tasks appear in a view.
type Filter string

const (
	// FilterActive lists only ACTIVE tasks.
	FilterActive Filter = "ACTIVE"

	// FilterNonClear lists every task except CLEAR ones.
	FilterNonClear Filter = "NON_CLEAR"

	// FilterAll lists every task.
	FilterAll Filter = "ALL"
)

// ErrInvalidFilter is returned when an unknown view filter is requested.
var ErrInvalidFilter = errors.New("invalid view filter")

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterActive, FilterNonClear, FilterAll}
}

// IsValid returns true if the filter is a known valid value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// Matches reports whether a task with the given status appears in the view.
func (f Filter) Matches(status task.Status) bool {
	switch f {
	case FilterActive:
		return status == task.StatusActive
	case FilterNonClear:
		return status != task.StatusClear
	case FilterAll:
		return true
	default:
		return false
	}
}

// ParseFilter normalizes and validates a filter name.
func ParseFilter(value string) (Filter, error) {
	filter := Filter(internalstrings.NormalizeUpperTrimSpace(value))
	if !filter.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidFilter, Filter(value), ValidFilters())
	}
	return filter, nil
}

// Row is one line of a view: a task plus its depth in the full forest.
type Row struct {
	task.Task

	// Depth is the number of ancestors the task has in the full forest,
	// whether or not those ancestors match the filter.
	Depth int `json:"depth"`
}
