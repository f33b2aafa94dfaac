package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
)

const hashHeader = "HashSHA256"

// checkHash verifies the HashSHA256 header against the raw request body.
// It is a no-op when the handler has no hash key.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.checkHash").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(hashHeader)
		if hashFromRequest == "" {
			h.logger.Err(ErrEmptyHash).Str("func", "*Handler.checkHash").Send()
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		if !h.hasher.Equal(body, hashFromRequest) {
			h.logger.Err(ErrIntegrityCheckFailed).Str("func", "*Handler.checkHash").
				Str("hash from request", hashFromRequest).
				Str("hashed body", h.hasher.HashHex(body)).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.checkHash").
			Str("hash from request", hashFromRequest).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
