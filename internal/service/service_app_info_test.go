package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	assert.Equal(t, "1.4.0", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_NotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	// без -ldflags версия не известна
	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
