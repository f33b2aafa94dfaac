package store

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ServerBookmarkStorage is the record store behind the emulator server.
type ServerBookmarkStorage interface {
	// GetAll returns every record ordered by id.
	GetAll(ctx context.Context) ([]models.Bookmark, error)
	Get(ctx context.Context, id int64) (models.Bookmark, error)
	// Insert stores bookmark under a newly assigned id and returns it.
	Insert(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	Update(ctx context.Context, bookmark models.Bookmark) error
	Delete(ctx context.Context, id int64) error
}
