package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// Priority is the optional importance level of an item.
type Priority string

const (
	// PriorityNone means no priority was chosen; stored as NULL.
	PriorityNone   Priority = ""
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// priorityNoneLabel is how forms and selectors name [PriorityNone].
const priorityNoneLabel = "None"

// Priorities lists every selectable priority in display order.
var Priorities = []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh}

// ErrUnknownPriority is returned by [ParsePriority] for values outside [Priorities].
var ErrUnknownPriority = errors.New("unknown priority")

// ParsePriority maps user input onto a Priority. Matching is case-insensitive,
// and both the empty string and "None" yield [PriorityNone].
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, priorityNoneLabel) {
		return PriorityNone, nil
	}

	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}

	return PriorityNone, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Valid reports whether p is one of [Priorities].
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Label is the human-readable name, "None" for [PriorityNone].
func (p Priority) Label() string {
	if p == PriorityNone {
		return priorityNoneLabel
	}
	return string(p)
}

// Scan implements [sql.Scanner]. NULL scans to [PriorityNone].
func (p *Priority) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PriorityNone
	case string:
		*p = Priority(v)
	case []byte:
		*p = Priority(v)
	default:
		return fmt.Errorf("cannot scan %T into Priority", src)
	}
	return nil
}

// Value implements [driver.Valuer]. [PriorityNone] is written as NULL.
func (p Priority) Value() (driver.Value, error) {
	if p == PriorityNone {
		return nil, nil
	}
	return string(p), nil
}
