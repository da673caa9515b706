package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ItemService is the validated item API used by every front end. The local
// implementation wraps the item store; the remote one is the HTTP adapter.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, create models.ItemCreate) (models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	Complete(ctx context.Context, id int64) (models.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// logging or validating.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}
