package grpcserver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"service/pkg/logger"
)

const (
	ServiceName = "delivery"

	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

// HealthServer отдает grpc.health.v1 для оркестраторов, которые проверяют сервис по gRPC.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func NewHealthServer(log logger.Logger) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	h := &HealthServer{
		log: log.With(
			logger.NewField("component", "grpc-health"),
		),
		server: server,
		health: healthServer,
	}
	h.SetServing(true)

	return h
}

// SetServing меняет статус и общего сервиса "", и именованного ServiceName.
func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Serve блокируется до Stop. Штатная остановка не считается ошибкой.
func (h *HealthServer) Serve(lis net.Listener) error {
	h.log.With(
		logger.NewField("addr", lis.Addr().String()),
	).Info("gRPC health server starting")

	err := h.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (h *HealthServer) Stop() {
	h.health.Shutdown()
	h.server.GracefulStop()
	h.log.Info("gRPC health server stopped")
}
