package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type Services struct {
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ItemService:    NewItemService(storages.ItemRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
