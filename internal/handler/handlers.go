package handler

import (
	"errors"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/handler/grpc"
	"github.com/MKhiriev/go-profile-editor/internal/handler/http"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
)

// errNoHandlersAreCreated means neither transport address is configured.
var errNoHandlersAreCreated = errors.New("server config has neither an HTTP nor a gRPC address")

// Handlers groups the transport handlers of the profile server. A nil field
// means that transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address in
// cfg. httpOpts are passed to the HTTP handler together with the request
// timeout from cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, httpOpts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		opts := append([]http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}, httpOpts...)
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
