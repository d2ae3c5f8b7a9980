package grpc

import (
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// UserServiceName is the service name health clients ask about. The empty
// name reports the same status and stands for the whole server.
const UserServiceName = "profileeditor.UserService"

// Handler is the root gRPC transport handler.
//
// It owns the standard grpc.health.v1 service. The serving status starts as
// NOT_SERVING and is switched by [Handler.SetServing], which the health
// worker calls after every store ping.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)
	return h
}

// Register attaches the health service and server reflection to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(UserServiceName, status)
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
