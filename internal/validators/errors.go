package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidItem is the kind shared by every item validation failure.
	ErrInvalidItem = errors.New("invalid item")

	ErrEmptyTitle       = fmt.Errorf("%w: title is required", ErrInvalidItem)
	ErrInvalidPriority  = fmt.Errorf("%w: priority must be one of None, Low, Medium, High", ErrInvalidItem)
	ErrInvalidID        = fmt.Errorf("%w: id must be positive", ErrInvalidItem)
	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", ErrInvalidItem)
	ErrUnknownLanguage  = fmt.Errorf("%w: unsupported language", ErrInvalidItem)
)
