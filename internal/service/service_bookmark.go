package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type bookmarkService struct {
	storage store.ServerBookmarkStorage
	et      *models.EntityType

	logger *logger.Logger
}

func NewBookmarkService(storage store.ServerBookmarkStorage, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		storage: storage,
		et:      models.BookmarkType(),
		logger:  logger,
	}
}

func (b *bookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	return b.storage.GetAll(ctx)
}

func (b *bookmarkService) Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	return b.storage.Insert(ctx, bookmark)
}

// Merge implements BookmarkService. The key field is never taken from patch.
func (b *bookmarkService) Merge(ctx context.Context, id int64, patch models.Bookmark, fields []string) (models.Bookmark, error) {
	stored, err := b.storage.Get(ctx, id)
	if err != nil {
		return models.Bookmark{}, mapStorageError(err)
	}

	for _, name := range fields {
		f, ok := b.et.Field(name)
		if !ok || f.IsKey || !f.IsOnServer {
			continue
		}
		v, err := patch.Value(name)
		if err != nil {
			return models.Bookmark{}, err
		}
		if err = stored.SetValue(name, v); err != nil {
			return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	if err = b.storage.Update(ctx, stored); err != nil {
		return models.Bookmark{}, mapStorageError(err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "bookmarkService.Merge").
		Int64("bookmark_id", id).
		Strs("fields", fields).
		Msg("bookmark merged")
	return stored, nil
}

func (b *bookmarkService) Delete(ctx context.Context, id int64) error {
	return mapStorageError(b.storage.Delete(ctx, id))
}

func mapStorageError(err error) error {
	if errors.Is(err, store.ErrBookmarkNotFound) {
		return fmt.Errorf("%w: %w", ErrBookmarkNotFound, err)
	}
	return err
}
