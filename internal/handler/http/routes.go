package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	methodMerge   = "MERGE"
	resourceParam = "resource"
)

func init() {
	chi.RegisterMethod(methodMerge)
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/version", h.getServerVersion)

	// collection routes, e.g. /Bookmark and /Bookmark(5)
	router.Group(func(r chi.Router) {
		r.Use(h.tokenAuth)

		r.Get("/{resource}", h.list)
		r.Delete("/{resource}", h.delete)
		r.With(h.checkHash).Post("/{resource}", h.create)
		r.With(h.checkHash).Method(methodMerge, "/{resource}", http.HandlerFunc(h.merge))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
