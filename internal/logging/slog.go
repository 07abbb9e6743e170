package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrijs2005/puisi/internal/requestid"
)

type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewJSONLogger builds the logger every service binary starts with:
// JSON lines to w, tagged with the service name.
func NewJSONLogger(w io.Writer, service string, level slog.Level) *SlogLogger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h).With("service", service))
}

// withRequestID appends the request id carried by ctx, if any. args is
// copied first so the caller's slice is never written to.
func withRequestID(ctx context.Context, args []any) []any {
	id := requestid.From(ctx)
	if id == "" {
		return args
	}
	return append(args[:len(args):len(args)], "request_id", id)
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
