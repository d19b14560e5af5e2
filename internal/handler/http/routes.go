package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/peer", func(r chi.Router) {
		r.Post("/sync", h.syncUpdate)
		r.Post("/paired", h.pairedWith)
		r.Post("/device-removed", h.deviceRemoved)
		r.Post("/share-request", h.shareRequest)
		r.Post("/share-grant", h.shareGrant)
	})

	router.Get("/api/version/", h.appVersion)

	return router
}
