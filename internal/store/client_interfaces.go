package store

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalBookmarkRepository is the sqlite-backed local bookmark store.
type LocalBookmarkRepository interface {
	// GetBookmarksForServerUpdate returns records flagged IsLocalModified,
	// ordered by ordinal.
	GetBookmarksForServerUpdate(ctx context.Context) ([]models.Bookmark, error)
	// GetBookmarksForServerDelete returns records flagged IsLocalDeleted,
	// ordered by ordinal.
	GetBookmarksForServerDelete(ctx context.Context) ([]models.Bookmark, error)
	// GetAll returns records not flagged IsLocalDeleted, ordered by ordinal.
	GetAll(ctx context.Context) ([]models.Bookmark, error)
	Get(ctx context.Context, id int64) (models.Bookmark, error)
	// Save inserts a record with a zero BookmarkID and returns it with the
	// assigned id, or overwrites the existing record otherwise.
	Save(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	DeleteAll(ctx context.Context) error
	NextOrdinal(ctx context.Context) (int64, error)
	// ReplaceAll erases every record and inserts bookmarks in a single
	// transaction. Ids are assigned by the store.
	ReplaceAll(ctx context.Context, bookmarks []models.Bookmark) error
}

// LocalTombstoneRepository keeps small name/value client settings.
type LocalTombstoneRepository interface {
	GetValue(ctx context.Context, name string) (string, error)
	SetValue(ctx context.Context, name, value string) error
}
