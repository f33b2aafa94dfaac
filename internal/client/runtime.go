package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Runtime owns everything a client process needs: the opened local store
// and the services built on top of it.
type Runtime struct {
	Services *service.ClientServices

	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewRuntime opens the local store, builds the remote adapter and wires the
// client services. Close must be called to release the database.
func NewRuntime(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*Runtime, error) {
	registry := models.DefaultRegistry()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.DSN, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storages: %w", err)
	}

	return &Runtime{
		Services: service.NewClientServices(storages, serverAdapter, registry, logger),
		storages: storages,
		logger:   logger,
	}, nil
}

func (r *Runtime) Close() error {
	r.logger.Debug().Msg("closing local storages")
	return r.storages.Close()
}
