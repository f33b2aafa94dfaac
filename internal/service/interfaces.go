package service

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BookmarkService is the record logic of the emulator server.
type BookmarkService interface {
	List(ctx context.Context) ([]models.Bookmark, error)

	// Create stores bookmark under a new server id and returns it.
	Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)

	// Merge applies the listed fields of patch to the record id. Fields
	// absent from the list keep their stored values.
	Merge(ctx context.Context, id int64, patch models.Bookmark, fields []string) (models.Bookmark, error)

	Delete(ctx context.Context, id int64) error
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
