package service

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type ClientServices struct {
	BookmarkService ClientBookmarkService
	SyncService     ClientSyncService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, registry *models.Registry, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		BookmarkService: NewClientBookmarkService(storages.BookmarkRepository, logger),
		SyncService: NewClientSyncService(
			storages.BookmarkRepository,
			storages.TombstoneRepository,
			serverAdapter,
			registry,
			logger,
		),
	}
}
