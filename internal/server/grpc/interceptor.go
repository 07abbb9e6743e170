package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/requestid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// requestIDKey is the metadata form of the X-Request-ID header.
var requestIDKey = strings.ToLower(common.RequestIDHeaderName)

// requestID returns the caller's x-request-id metadata or a fresh id.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDKey); len(values) > 0 {
			return requestid.OrNew(values[0])
		}
	}
	return requestid.New()
}

// loggingInterceptor stores the request id in the handler's context, sends
// it back as response header metadata and logs one line per call.
func (s *HealthServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	ctx = requestid.With(ctx, requestID(ctx))

	if err := grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, requestid.From(ctx))); err != nil {
		s.logger.Debug(ctx, "set request id header", "error", err)
	}

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "grpc request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
