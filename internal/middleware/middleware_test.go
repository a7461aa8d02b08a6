package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRequestLogger(t *testing.T) {
	buf := captureLogs(t)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger)
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/bad", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) })
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) })

	tests := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", http.StatusOK, "INFO"},
		{"/bad", http.StatusBadRequest, "WARN"},
		{"/boom", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path+"?x=1", nil))

			require.Equal(t, tt.status, rr.Code)
			out := buf.String()
			assert.Contains(t, out, "request completed")
			assert.Contains(t, out, "path="+tt.path)
			assert.Contains(t, out, "level="+tt.level)
			assert.Contains(t, out, `query="x=1"`)
			assert.Contains(t, out, "request_id=")
		})
	}
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	captureLogs(t)

	h := RateLimit(2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	h := RateLimit(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rr.Code)
	}
}

func TestRateLimiterRefillsAndPrunes(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(60)
	l.now = func() time.Time { return clock }

	for i := 0; i < 60; i++ {
		require.True(t, l.Allow("a"))
	}
	assert.False(t, l.Allow("a"))

	clock = clock.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token per second should refill")

	for i := 0; i < pruneAbove; i++ {
		l.Allow(string(rune('A' + i%26)) + time.Duration(i).String())
	}
	clock = clock.Add(idleAfter + time.Second)
	l.Allow("fresh")
	assert.Len(t, l.clients, 1)
}

func TestRequestIDHeader(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestIDHeader)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}
