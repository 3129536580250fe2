package grpc

import (
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RelayService is the health service name probed by supervisors.
const RelayService = "chat-relay.Relay"

// HealthServer reports the relay as serving while its log subscription is alive.
// The relay does not resubscribe on its own: an external supervisor watching
// this status decides whether to restart the process.
type HealthServer struct {
	log    *slog.Logger
	health *health.Server
}

func NewHealthServer(log *slog.Logger) *HealthServer {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(RelayService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, health: h}
}

func (s *HealthServer) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, s.health)
}

func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.log.Info("Health status changed", "service", RelayService, "status", status.String())
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(RelayService, status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
}
