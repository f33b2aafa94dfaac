package store

import "github.com/MKhiriev/go-bookmark-sync/internal/logger"

// Storages groups the emulator server storages.
type Storages struct {
	BookmarkStorage ServerBookmarkStorage
}

func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating in-memory server storages")
	return &Storages{
		BookmarkStorage: NewMemoryBookmarkStorage(),
	}
}
