package http

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type Handler struct {
	services *service.Services
	registry *models.Registry

	// apiToken and hasher are unset when the matching check is disabled.
	apiToken string
	hasher   *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *models.Registry, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		registry: registry,
		apiToken: cfg.APIToken,
		logger:   logger,
	}
	if cfg.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.HashKey)
	}
	return h
}
