package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET  /api/version/
//	GET  /api/rooms/{roomID}/scene
//	PUT  /api/rooms/{roomID}/scene
//	POST /api/rooms/{roomID}/scene/saved
//	GET  /api/rooms/{roomID}/ws
//	POST /api/files/save
//	POST /api/files/load
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/rooms/{roomID}", func(r chi.Router) {
		r.Use(h.roomAuth)

		if h.portal != nil {
			// upgraded connections outlive the request timeout and cannot be gzipped
			r.Get("/ws", h.portal.ServeHTTP)
		}

		r.Group(func(r chi.Router) {
			r.Use(withGZip, h.withConnectionID)
			if requestTimeout > 0 {
				r.Use(middleware.Timeout(requestTimeout))
			}

			r.Get("/scene", h.loadScene)
			r.Put("/scene", h.saveScene)
			r.Post("/scene/saved", h.sceneSaved)
		})
	})

	router.Route("/api/files", func(r chi.Router) {
		r.Use(h.roomAuth, withGZip)
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		r.Post("/save", h.saveFiles)
		r.Post("/load", h.loadFiles)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
