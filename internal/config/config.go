package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultCORSOrigin  = "http://localhost:8080"
	defaultRateLimit   = 120
	defaultEnvironment = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	DefaultsPath       string
	CORSOrigins        []string
	RateLimitPerMinute int
	Env                string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Local development values; real deployments inject the environment.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg := Config{
		Port:         envOr("PORT", defaultPort),
		LogLevel:     strings.ToLower(envOr("LOG_LEVEL", defaultLogLevel)),
		LogFormat:    strings.ToLower(envOr("LOG_FORMAT", defaultLogFormat)),
		DefaultsPath: os.Getenv("DEFAULTS_PATH"),
		CORSOrigins:  splitList(envOr("CORS_ORIGINS", defaultCORSOrigin)),
		Env:          strings.ToLower(envOr("APP_ENV", defaultEnvironment)),
	}

	cfg.RateLimitPerMinute = defaultRateLimit
	if raw := os.Getenv("RATE_LIMIT_RPM"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			slog.Warn("ignoring invalid RATE_LIMIT_RPM", "value", raw)
		} else {
			cfg.RateLimitPerMinute = n
		}
	}

	return cfg
}

// IsDev reports whether the server runs in a development environment.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == defaultEnvironment
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
