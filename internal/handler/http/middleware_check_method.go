// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// routedMethods are the methods the emulator may serve on any path.
var routedMethods = []string{http.MethodGet, http.MethodPost, methodMerge, http.MethodDelete}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with HTTP 405 whenever a path matches a registered route but
// the method is not handled. This handler answers HTTP 404 Not Found
// instead, listing the methods the path does support in the Allow header,
// e.g. a PUT on /Bookmark(5) gets "Allow: MERGE, DELETE".
//
// Route lookup goes through [chi.Mux.Match], so parameterised patterns such
// as /{resource} are expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routedMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		// The method is registered: delegate to the router's normal pipeline.
		if slices.Contains(allowed, r.Method) {
			router.ServeHTTP(w, r)
			return
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		w.WriteHeader(http.StatusNotFound)
	}
}
