package models

import "strings"

// Item is a single task-list entry as stored in the items table.
//
// ID is assigned by the store on insert and never reused; callers must not
// set it. Description is empty when the column is NULL, Priority is
// [PriorityNone] when unset, DueDate is nil when no date was chosen.
type Item struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority,omitempty"`
	DueDate     *Date    `json:"due_date,omitempty"`
}

// ItemCreate carries the caller-supplied fields of a new item.
// Completed always starts as false and is therefore absent here.
type ItemCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	DueDate     *Date    `json:"due_date,omitempty"`
}

// ItemUpdate is a partial update. A nil field is left untouched.
//
// Optional columns are cleared by pointing at their zero value: an empty
// Description, [PriorityNone] or a zero [Date].
type ItemUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *Date     `json:"due_date,omitempty"`
}

// IsEmpty reports whether the update provides no field at all.
func (u ItemUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.Completed == nil &&
		u.Priority == nil &&
		u.DueDate == nil
}

// HasTitle reports whether the title is non-blank.
func (c ItemCreate) HasTitle() bool {
	return strings.TrimSpace(c.Title) != ""
}

// MarkCompleted returns an update that flips an item to completed.
func MarkCompleted() ItemUpdate {
	completed := true
	return ItemUpdate{Completed: &completed}
}
