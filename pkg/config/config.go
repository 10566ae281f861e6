// Package config loads service configuration from the environment, with
// optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Addr               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
}

type ProviderConfig struct {
	// APIKey may be empty: the aggregator then serves the deterministic
	// mock datasets instead of failing startup.
	APIKey  string
	BaseURL string
	Timeout time.Duration

	RequestSpacing time.Duration
	CacheTTL       time.Duration
}

type LogConfig struct {
	Level  string // debug|info|warn|error
	Format string // json|text
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

type Config struct {
	Server        ServerConfig
	Provider      ProviderConfig
	Log           LogConfig
	Observability ObservabilityConfig
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present and ignored otherwise.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:               getEnv("SERVER_ADDR", ":8080"),
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       30 * time.Second,
			CORSAllowedOrigins: splitEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Provider: ProviderConfig{
			APIKey:         os.Getenv("GOOGLE_PLACES_API_KEY"),
			BaseURL:        getEnv("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
			Timeout:        10 * time.Second,
			RequestSpacing: 100 * time.Millisecond,
			CacheTTL:       10 * time.Minute,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		},
	}

	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", v, err)
		}
		cfg.Provider.Timeout = d
	}
	if v := os.Getenv("PROVIDER_REQUEST_SPACING"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_REQUEST_SPACING %q: %w", v, err)
		}
		cfg.Provider.RequestSpacing = d
	}
	if v := os.Getenv("PROVIDER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_CACHE_TTL %q: %w", v, err)
		}
		cfg.Provider.CacheTTL = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
