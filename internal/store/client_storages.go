package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// ClientStorages groups the local repositories so they can be passed to the
// service layer as one value.
type ClientStorages struct {
	BookmarkRepository  LocalBookmarkRepository
	TombstoneRepository LocalTombstoneRepository

	db *DB
}

// NewClientStorages opens the sqlite database at dsn, applies pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, dsn string, registry *models.Registry, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, registry, logger), nil
}

func newClientStorages(db *DB, registry *models.Registry, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		BookmarkRepository:  NewLocalBookmarkRepository(db, registry, logger),
		TombstoneRepository: NewLocalTombstoneRepository(db, registry, logger),
		db:                  db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
