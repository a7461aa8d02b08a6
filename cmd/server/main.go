package main

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Simplici0/scanquote/internal/config"
	"github.com/Simplici0/scanquote/internal/logger"
	"github.com/Simplici0/scanquote/internal/middleware"
	"github.com/Simplici0/scanquote/internal/pricing"
	"github.com/Simplici0/scanquote/internal/quote"
	"github.com/Simplici0/scanquote/web"
)

const (
	devTemplatesDir = "web/templates"
	compressLevel   = 5
	shutdownTimeout = 10 * time.Second
)

type server struct {
	defaults  config.Defaults
	templates fs.FS
}

type baseViewData struct {
	ErrorMessage string
}

type calculatorViewData struct {
	baseViewData
	Inputs       pricing.Inputs
	StaffingMode pricing.StaffingMode
	LaborMode    pricing.LaborMode
	Result       *pricing.Result
}

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	defaults, err := config.LoadDefaults(cfg.DefaultsPath)
	if err != nil {
		slog.Error("failed to load defaults", "path", cfg.DefaultsPath, "error", err)
		os.Exit(1)
	}

	srv := &server{defaults: defaults, templates: web.Templates()}
	if cfg.IsDev() {
		// Read templates from disk so edits show up without a rebuild.
		if info, err := os.Stat(devTemplatesDir); err == nil && info.IsDir() {
			srv.templates = os.DirFS(devTemplatesDir)
			slog.Info("serving templates from disk", "directory", devTemplatesDir)
		}
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(srv, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", httpServer.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}

func newRouter(s *server, cfg config.Config) *chi.Mux {
	compressor := chimw.NewCompressor(compressLevel, "text/html", "text/plain", "application/json")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	r.Use(compressor.Handler)

	r.Get("/", s.handleCalculatorForm)
	r.Post("/calculate", s.handleCalculatorSubmit)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))

		r.Get("/defaults", s.handleDefaults)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/scenarios/compare", s.handleCompare)
		r.Post("/quote/text", s.handleQuoteText)
	})

	return r
}

var templateFuncs = template.FuncMap{
	"money":   quote.Money,
	"percent": quote.Percent,
	"days":    quote.Days,
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(s.templates, "layout.html", page)
	if err != nil {
		slog.Error("failed to parse template", "page", page, "error", err)
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("failed to render template", "page", page, "error", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
