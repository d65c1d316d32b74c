/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift payroll server.
  Handles configuration, logging, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env, environment)
  2. Parse command-line flags (override the environment)
  3. Build the zap logger
  4. Create API handler and metrics
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr    Listen address (default: APP_ADDR or :8080)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (SHUTDOWN_TIMEOUT, 30s default)
  3. Flush logs and exit

EXAMPLES:
  # Run with defaults
  ./server

  # Production logging on another port
  APP_ENV=production ./server -addr=:3000

ENVIRONMENT:
  See config/config.go for every key.

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Configuration
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/shift-payroll/api"
	"github.com/warp/shift-payroll/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags
	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	flag.Parse()
	cfg.Addr = *addr

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// Initialize handler and router
	handler := api.NewHandler(logger, api.NewMetrics(), cfg.MaxBodyBytes)
	router := api.NewRouter(handler, cfg)

	// Create server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		zap.L().Info("server starting",
			zap.String("addr", cfg.Addr),
			zap.String("env", cfg.Env),
			zap.Int("rate_limit_per_minute", cfg.RateLimitPerMinute),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	zap.L().Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("forced shutdown", zap.Error(err))
		return
	}

	zap.L().Info("server stopped")
}

// newLogger picks the zap preset for APP_ENV and applies LOG_LEVEL.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}
