package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

// NewItemService returns the local [ItemService] backed by repo, with input
// validation applied before any store access.
func NewItemService(repo store.ItemRepository, logger *logger.Logger) ItemService {
	inner := &itemService{
		itemRepository: repo,
		logger:         logger,
	}

	return NewItemValidationService().Wrap(inner)
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.ListAll(ctx)
}

func (s *itemService) Create(ctx context.Context, create models.ItemCreate) (models.Item, error) {
	item, err := s.itemRepository.Create(ctx, create)
	if err != nil {
		return models.Item{}, err
	}

	logger.FromContext(ctx).Info().Int64("item_id", item.ID).Msg("item created")
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.Get(ctx, id)
}

func (s *itemService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	return s.itemRepository.Update(ctx, id, update)
}

// Complete is idempotent: completing a completed item succeeds.
func (s *itemService) Complete(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.Update(ctx, id, models.MarkCompleted())
	if err != nil {
		return models.Item{}, err
	}

	logger.FromContext(ctx).Info().Int64("item_id", id).Msg("item completed")
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.itemRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	logger.FromContext(ctx).Info().Int64("item_id", id).Bool("deleted", deleted).Msg("item delete requested")
	return deleted, nil
}
