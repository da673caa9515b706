package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) List(ctx context.Context) ([]models.Item, error) {
	return v.inner.List(ctx)
}

func (v *ItemValidationService) Create(ctx context.Context, create models.ItemCreate) (models.Item, error) {
	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before saving: %w", err)
	}

	return v.inner.Create(ctx, create)
}

func (v *ItemValidationService) Get(ctx context.Context, id int64) (models.Item, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Item{}, err
	}

	return v.inner.Get(ctx, id)
}

// Update with no fields is forwarded so the store can return the current row.
func (v *ItemValidationService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Item{}, err
	}
	if err := v.validator.Validate(ctx, update, validators.FieldTitle, validators.FieldPriority); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before update: %w", err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *ItemValidationService) Complete(ctx context.Context, id int64) (models.Item, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Item{}, err
	}

	return v.inner.Complete(ctx, id)
}

func (v *ItemValidationService) Delete(ctx context.Context, id int64) (bool, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return false, err
	}

	return v.inner.Delete(ctx, id)
}

func (v *ItemValidationService) Wrap(wrapper ItemService) ItemService {
	v.inner = wrapper
	return v
}
