package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// pictures serves stored pictures under picturesPath; nil unless the
	// filesystem backend is used.
	pictures     http.Handler
	picturesPath string

	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

// Option configures optional parts of the [Handler].
type Option func(*Handler)

// WithPictures mounts handler under path + "/*".
func WithPictures(path string, handler http.Handler) Option {
	return func(h *Handler) {
		h.picturesPath = path
		h.pictures = handler
	}
}

// WithRequestTimeout bounds every request with chi's Timeout middleware.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	registry := prometheus.NewRegistry()

	h := &Handler{
		services: services,
		registry: registry,
		metrics:  newHTTPMetrics(registry),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
