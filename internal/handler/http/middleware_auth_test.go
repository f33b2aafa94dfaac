package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{name: "disabled", configured: "", sent: "", wantStatus: http.StatusOK},
		{name: "disabled ignores header", configured: "", sent: "anything", wantStatus: http.StatusOK},
		{name: "match", configured: "secret", sent: "secret", wantStatus: http.StatusOK},
		{name: "missing", configured: "secret", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "mismatch", configured: "secret", sent: "secret2", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{apiToken: tt.configured, logger: logger.Nop()}
			called := false

			req := httptest.NewRequest(http.MethodGet, "/Bookmark", nil)
			if tt.sent != "" {
				req.Header.Set(apiTokenHeader, tt.sent)
			}
			rr := httptest.NewRecorder()
			h.tokenAuth(okHandler(&called)).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}

func TestCheckHash(t *testing.T) {
	const body = `<entry xmlns="http://www.w3.org/2005/Atom"/>`
	hasher := utils.NewHasher("key")

	tests := []struct {
		name       string
		hasher     *utils.Hasher
		signature  string
		wantStatus int
	}{
		{name: "disabled", wantStatus: http.StatusOK},
		{name: "valid", hasher: hasher, signature: hasher.HashHex([]byte(body)), wantStatus: http.StatusOK},
		{name: "other key", hasher: hasher, signature: utils.HashString(body, "other"), wantStatus: http.StatusBadRequest},
		{name: "not hex", hasher: hasher, signature: "zz", wantStatus: http.StatusBadRequest},
		{name: "missing", hasher: hasher, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{hasher: tt.hasher, logger: logger.Nop()}

			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				got = string(data)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/Bookmark", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(hashHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			h.checkHash(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				// тело восстановлено для следующего обработчика
				assert.Equal(t, body, got)
			}
		})
	}
}
