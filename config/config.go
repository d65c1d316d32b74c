/*
config.go - Runtime configuration for the payroll server

SOURCES (later wins):
  1. Built-in defaults
  2. .env file in the working directory (optional)
  3. Process environment
  4. Command-line flags (applied by cmd/server)

KEYS:
  APP_ADDR               listen address               (":8080")
  APP_ENV                development | production     ("development")
  LOG_LEVEL              debug | info | warn | error  ("info")
  CORS_ORIGINS           comma-separated origins      ("http://localhost:5173,http://localhost:8080")
  RATE_LIMIT_PER_MINUTE  requests per IP, 0 disables  (120)
  MAX_BODY_BYTES         request body limit           (4 MiB)
  SHUTDOWN_TIMEOUT       graceful shutdown window     ("30s")
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application runtime configuration.
type Config struct {
	Addr               string
	Env                string
	LogLevel           string
	CORSOrigins        []string
	RateLimitPerMinute int
	MaxBodyBytes       int64
	ShutdownTimeout    time.Duration
}

// IsProduction reports whether APP_ENV selects production logging.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins:        getList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 120),
		MaxBodyBytes:       int64(getInt("MAX_BODY_BYTES", 4<<20)),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return cfg, fmt.Errorf("LOG_LEVEL %q: must be debug, info, warn or error", cfg.LogLevel)
	}
	if cfg.RateLimitPerMinute < 0 {
		return cfg, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be non-negative, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.MaxBodyBytes <= 0 {
		return cfg, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		// Bare integers are seconds.
		if secs, convErr := strconv.Atoi(val); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		return fallback
	}
	return d
}
