package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Config{Level: "info", Format: "json"}).Info("hello", "k", "v")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}

	buf.Reset()
	New(&buf, Config{Level: "warn", Format: "text"}).Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, Config{Level: "debug"}))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")
	WithContext(ctx).Info("info message")

	if !strings.Contains(buf.String(), "request_id=req-123") {
		t.Errorf("expected request id in log, got %q", buf.String())
	}

	buf.Reset()
	WithContext(context.Background()).Info("bare")
	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("expected no request id, got %q", buf.String())
	}
}
