package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Route("/users/{id}", func(r chi.Router) {
			r.Use(withUserID)

			r.Get("/", h.getProfile)
			r.Put("/", h.updateProfile)
			r.Get("/platforms", h.getPlatforms)
			r.Put("/platforms", h.replacePlatforms)
			r.Put("/profile", h.saveProfile)
			r.Get("/profilePicture", h.getProfilePicture)
			r.Put("/uploadPicture", h.uploadPicture)
		})

		r.Get("/api/version", h.getVersion)
	})

	router.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	if h.pictures != nil && h.picturesPath != "" {
		router.Handle(strings.TrimRight(h.picturesPath, "/")+"/*", h.pictures)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
