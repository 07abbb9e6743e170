// Package grpc exposes the standard gRPC health service next to the JSON
// API, for orchestrators that check health over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/puisi/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type HealthServer struct {
	address string
	service string
	logger  logging.Logger
	health  *health.Server
}

// NewHealthServer reports SERVING for the overall server and for
// "<service>-service" until it is stopped.
func NewHealthServer(address, service string, l logging.Logger) *HealthServer {
	return &HealthServer{
		address: address,
		service: service + "-service",
		logger:  l.With("module", "grpc_server"),
		health:  health.NewServer(),
	}
}

func (s *HealthServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener. On cancellation every status
// flips to NOT_SERVING before the server drains.
func (s *HealthServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(s.service, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, s.health)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}
