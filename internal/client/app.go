package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type App struct {
	ui       *tui.TUI
	storages *store.Storages
	remote   bool
	logger   *logger.Logger
}

// NewApp wires the terminal client.
//
// In remote mode every item and translation call goes to the web server at
// cfg.Adapter. Otherwise the client opens the store file itself; a store
// that cannot be opened leaves the client running in an error state.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg.Remote() {
		return newRemoteApp(ctx, cfg, buildInfo, logger)
	}
	return newLocalApp(ctx, cfg, buildInfo, logger)
}

func newRemoteApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	// translation stays disabled until the server reports it
	if _, err = serverAdapter.Languages(ctx); err != nil {
		logger.Warn().Err(err).Str("address", cfg.Adapter.HTTPAddress).Msg("server is not reachable yet")
	}

	return &App{
		ui:     tui.New(serverAdapter, serverAdapter, buildInfo, logger),
		remote: true,
		logger: logger,
	}, nil
}

func newLocalApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Err(err).Str("dsn", cfg.Storage.DB.DSN).Msg("item store is unavailable")
		storages = store.NewUnavailableStorages(err)
	}

	services, err := service.NewServices(storages, cfg.App, buildInfo, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	tr, err := translator.New(ctx, cfg.Translator, logger)
	if err != nil {
		logger.Err(err).Msg("translation is disabled")
		tr = translator.NewUnavailable()
	}

	return &App{
		ui:       tui.New(services.ItemService, tr, buildInfo, logger),
		storages: storages,
		logger:   logger,
	}, nil
}

// Run blocks until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.Close()

	a.logger.Info().Bool("remote", a.remote).Msg("starting terminal client")
	return a.ui.Run(ctx)
}

// Close releases the local store, if one was opened.
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
