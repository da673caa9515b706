package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field names accepted by [ItemValidator] to scope validation.
const (
	FieldTitle    = "title"
	FieldPriority = "priority"
	FieldUpdate   = "update"
	FieldID       = "id"
	FieldLanguage = "language"
)

// ItemValidator validates item creation and update payloads, item ids and
// translation targets.
type ItemValidator struct{}

// NewItemValidator constructs an [ItemValidator] as a [Validator].
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.ItemCreate / *models.ItemCreate (title, priority)
//   - models.ItemUpdate / *models.ItemUpdate (update, title, priority)
//   - int64 (id)
//   - string (language)
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemCreate:
		return v.validateCreate(value, fields...)
	case *models.ItemCreate:
		return v.validateCreate(*value, fields...)

	case models.ItemUpdate:
		return v.validateUpdate(value, fields...)
	case *models.ItemUpdate:
		return v.validateUpdate(*value, fields...)

	case int64:
		if value <= 0 {
			return ErrInvalidID
		}
		return nil

	case string:
		if !models.IsSupportedLanguage(value) {
			return ErrUnknownLanguage
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateCreate(create models.ItemCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(create.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if !create.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateUpdate(update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldTitle, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if update.Priority != nil && !update.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
