package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

const apiTokenHeader = "x-amx-token"

// tokenAuth is an HTTP middleware that enforces the static API token.
//
// When the handler is configured with an API token, every request must carry
// the same value in the `x-amx-token` header; otherwise the middleware
// responds with HTTP 401 Unauthorized. With no token configured the
// middleware passes every request through.
func (h *Handler) tokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.apiToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token := r.Header.Get(apiTokenHeader)
		if token == "" {
			log.Err(ErrEmptyToken).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.apiToken)) != 1 {
			log.Err(ErrInvalidToken).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
