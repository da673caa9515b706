package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
)

type unavailableItemRepository struct {
	err error
}

// NewUnavailableItemRepository returns an [ItemRepository] that performs no
// I/O and fails every call with [ErrStoreUnavailable] wrapping cause.
func NewUnavailableItemRepository(cause error) ItemRepository {
	err := ErrStoreUnavailable
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrStoreUnavailable, cause)
	}
	return &unavailableItemRepository{err: err}
}

func (r *unavailableItemRepository) ListAll(context.Context) ([]models.Item, error) {
	return nil, r.err
}

func (r *unavailableItemRepository) Create(context.Context, models.ItemCreate) (models.Item, error) {
	return models.Item{}, r.err
}

func (r *unavailableItemRepository) Get(context.Context, int64) (models.Item, error) {
	return models.Item{}, r.err
}

func (r *unavailableItemRepository) Update(context.Context, int64, models.ItemUpdate) (models.Item, error) {
	return models.Item{}, r.err
}

func (r *unavailableItemRepository) Delete(context.Context, int64) (bool, error) {
	return false, r.err
}
