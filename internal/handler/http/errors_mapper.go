package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/codec"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrBookmarkNotFound:    http.StatusNotFound,

	codec.ErrMalformedFeed:   http.StatusBadRequest,
	codec.ErrUnsupportedType: http.StatusBadRequest,

	models.ErrUnknownEntityType: http.StatusNotFound,
	models.ErrFieldTooLong:      http.StatusBadRequest,
	models.ErrInvalidFieldValue: http.StatusBadRequest,

	ErrInvalidResource: http.StatusNotFound,
	ErrKeyRequired:     http.StatusBadRequest,
	ErrKeyNotAllowed:   http.StatusBadRequest,

	store.ErrBookmarkNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus hides internal error text behind a generic message.
func messageFromStatus(err error, status int) string {
	if errors.Is(err, codec.ErrMalformedFeed) {
		return app.MsgInvalidDataProvided
	}

	switch status {
	case http.StatusInternalServerError:
		return app.MsgInternalServerError
	case http.StatusNotFound:
		return app.MsgDataNotFound
	}
	return err.Error()
}
