package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// getServerVersion answers GET /version with the build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	logger.FromRequest(r).Debug().Str("func", "*Handler.getServerVersion").Str("version", serverVersion).Send()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, serverVersion)
}
