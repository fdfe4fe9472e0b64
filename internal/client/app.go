package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/adapter"
	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/internal/tui"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/internal/vault"
	"github.com/MKhiriev/go-medi-vault/internal/workers"
	"github.com/MKhiriev/go-medi-vault/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// Workers is the background job set started for the lifetime of the UI.
type Workers interface {
	Run(ctx context.Context)
	Stop()
}

type App struct {
	storages *store.ClientStorages
	workers  Workers
	ui       UI
	logger   *logger.Logger
}

// NewApp opens the local store and wires the remote store, services, vault,
// background workers and the TUI.
func NewApp(ctx context.Context, cfg config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, validators.NewEntityValidator(), logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote store: %w", err)
	}

	services := service.NewClientServices(storages, remote, logger)
	v := vault.New(storages.Settings, logger)

	return &App{
		storages: storages,
		workers:  workers.NewWorkers(services.Sync, cfg.Workers, logger),
		ui:       tui.New(v, services, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run starts the background workers and blocks in the UI until the user
// quits. Leaving with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing local storage")
		}
	}()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	return err
}
