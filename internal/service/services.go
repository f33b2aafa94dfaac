package service

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Services groups the emulator server services.
type Services struct {
	BookmarkService BookmarkService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		BookmarkService: NewBookmarkValidationService().Wrap(NewBookmarkService(storages.BookmarkStorage, logger)),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
	}
}
