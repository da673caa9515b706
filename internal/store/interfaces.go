package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the durable item collection. Every method is a single
// atomic unit of work against the store file.
type ItemRepository interface {
	// ListAll returns every item in ascending id order.
	ListAll(ctx context.Context) ([]models.Item, error)

	// Create inserts a new item and returns it with its generated id.
	// A blank title fails with validators.ErrEmptyTitle and writes nothing.
	Create(ctx context.Context, create models.ItemCreate) (models.Item, error)

	// Get returns the item with id, or [ErrItemNotFound].
	Get(ctx context.Context, id int64) (models.Item, error)

	// Update applies the provided fields of update and returns the stored
	// result, or [ErrItemNotFound] when id does not exist.
	Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)

	// Delete removes the item permanently. It reports false with a nil
	// error when id does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}
