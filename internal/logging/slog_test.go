package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/puisi/internal/requestid"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("request_id", "123", "user", "alice")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	wantSubs := []string{
		"level=INFO",
		"msg=hello",
		"request_id=123",
		"user=alice",
		"k=v",
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestNewJSONLogger_TagsServiceAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, "puisi", slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "visible", "puisi_id", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line must be filtered at info level:\n%s", out)
	}
	for _, s := range []string{`"service":"puisi"`, `"msg":"visible"`, `"puisi_id":7`} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %s in output, got:\n%s", s, out)
		}
	}
}

func TestNop_SatisfiesLogger(t *testing.T) {
	var l Logger = Nop{}
	l.With("a", 1).Info(context.Background(), "dropped")
}

func TestSlogLogger_AddsRequestIDFromContext(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := requestid.With(context.Background(), "req-42")

	args := make([]any, 2, 4)
	args[0], args[1] = "k", "v"
	log.Info(ctx, "hello", args...)

	out := buf.String()
	if !strings.Contains(out, "request_id=req-42") || !strings.Contains(out, "k=v") {
		t.Fatalf("expected request id and attribute in output, got:\n%s", out)
	}
	if len(args) != 2 || args[:4][2] != nil {
		t.Fatalf("caller's args must be left untouched, got %v", args[:4])
	}

	buf.Reset()
	log.Info(context.Background(), "plain")
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("no request id expected without one in ctx, got:\n%s", buf.String())
	}
}
