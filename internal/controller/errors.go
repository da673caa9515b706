package controller

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

var (
	ErrTitleRequired  = fmt.Errorf("%w: please enter a title for the To-Do item", validators.ErrEmptyTitle)
	ErrInvalidDueDate = fmt.Errorf("%w: due date must be YYYY-MM-DD", validators.ErrInvalidItem)
	ErrDueDateInPast  = fmt.Errorf("%w: due date cannot be before today", validators.ErrInvalidItem)
)
