// Package httpapi is the JSON/HTTP transport of the puisi services: the
// request gate, error mapping, request logging and the route tables of the
// auth, puisi and reaction services.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/puisi/internal/logging"
)

type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	httpServer      *http.Server
}

// NewServer wraps handler with request logging and panic recovery.
func NewServer(address string, handler http.Handler, shutdownTimeout time.Duration, l logging.Logger) *Server {
	logger := l.With("module", "http_server")
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		httpServer: &http.Server{
			Addr:              address,
			Handler:           withRequestLogging(logger, handler),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		done <- s.httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := s.httpServer.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}
