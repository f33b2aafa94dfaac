package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/codec"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	res, err := h.parseResource(r)
	if err == nil && res.hasKey {
		err = ErrKeyNotAllowed
	}
	if err != nil {
		h.writeError(w, r, "*Handler.list", err)
		return
	}

	bookmarks, err := h.services.BookmarkService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.list", err)
		return
	}

	entities := make([]models.Entity, 0, len(bookmarks))
	for i := range bookmarks {
		entities = append(entities, &bookmarks[i])
	}

	payload, err := codec.EncodeFeed(entities, res.et)
	if err != nil {
		h.writeError(w, r, "*Handler.list", err)
		return
	}

	log.Debug().Str("func", "*Handler.list").Int("count", len(bookmarks)).Msg("feed served")
	utils.WriteAtom(w, payload, http.StatusOK)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	res, err := h.parseResource(r)
	if err == nil && res.hasKey {
		err = ErrKeyNotAllowed
	}
	if err != nil {
		h.writeError(w, r, "*Handler.create", err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, "*Handler.create", err)
		return
	}
	entity, err := codec.DecodeEntry(body, res.et)
	if err != nil {
		h.writeError(w, r, "*Handler.create", err)
		return
	}

	created, err := h.services.BookmarkService.Create(r.Context(), *entity.(*models.Bookmark))
	if err != nil {
		h.writeError(w, r, "*Handler.create", err)
		return
	}

	payload, err := codec.EncodeStoredEntry(&created, res.et)
	if err != nil {
		h.writeError(w, r, "*Handler.create", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.create").
		Int64("bookmark_id", created.BookmarkID).
		Msg("bookmark created")
	w.Header().Set("Location", fmt.Sprintf("/%s(%d)", res.et.NativeName, created.BookmarkID))
	utils.WriteAtom(w, payload, http.StatusCreated)
}

// merge applies only the fields present in the entry to the stored record.
func (h *Handler) merge(w http.ResponseWriter, r *http.Request) {
	res, err := h.parseResource(r)
	if err == nil && !res.hasKey {
		err = ErrKeyRequired
	}
	if err != nil {
		h.writeError(w, r, "*Handler.merge", err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, "*Handler.merge", err)
		return
	}
	patch, fields, err := codec.DecodeEntryFields(body, res.et)
	if err != nil {
		h.writeError(w, r, "*Handler.merge", err)
		return
	}

	if _, err = h.services.BookmarkService.Merge(r.Context(), res.id, *patch.(*models.Bookmark), fields); err != nil {
		h.writeError(w, r, "*Handler.merge", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.merge").
		Int64("bookmark_id", res.id).
		Strs("fields", fields).
		Msg("bookmark merged")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.parseResource(r)
	if err == nil && !res.hasKey {
		err = ErrKeyRequired
	}
	if err != nil {
		h.writeError(w, r, "*Handler.delete", err)
		return
	}

	if err = h.services.BookmarkService.Delete(r.Context(), res.id); err != nil {
		h.writeError(w, r, "*Handler.delete", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.delete").
		Int64("bookmark_id", res.id).
		Msg("bookmark deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	http.Error(w, messageFromStatus(err, status), status)
}
