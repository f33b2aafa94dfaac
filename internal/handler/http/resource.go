// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// resourcePattern matches `Bookmark` and `Bookmark(1002)`.
var resourcePattern = regexp.MustCompile(`^(\w+)(?:\((\d+)\))?$`)

// resource is a parsed collection path segment.
type resource struct {
	et     *models.EntityType
	id     int64
	hasKey bool
}

func (h *Handler) parseResource(r *http.Request) (resource, error) {
	segment := chi.URLParam(r, resourceParam)

	m := resourcePattern.FindStringSubmatch(segment)
	if m == nil {
		return resource{}, fmt.Errorf("%w: %q", ErrInvalidResource, segment)
	}

	et, err := h.registry.Lookup(m[1])
	if err != nil {
		return resource{}, err
	}
	if et.Name != models.BookmarkTypeName {
		return resource{}, fmt.Errorf("%w: %s is not served", models.ErrUnknownEntityType, et.Name)
	}

	res := resource{et: et}
	if m[2] != "" {
		if res.id, err = strconv.ParseInt(m[2], 10, 64); err != nil {
			return resource{}, fmt.Errorf("%w: %q", ErrInvalidResource, segment)
		}
		res.hasKey = true
	}

	return res, nil
}
