/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the attendance engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load configuration (defaults, file, ATTENDANCE_* env)
  3. Build the logger
  4. Build the engine with its classification cache
  5. Configure HTTP router and start the cache flusher
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  Path to a YAML config file (default: search ./config, .)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (server.shutdown_timeout)
  3. Stop the cache flusher
  4. Exit

EXAMPLES:
  # Run with a config file
  ./server -config=./config/config.yaml

  # Run on a different port with console logs
  ATTENDANCE_SERVER_PORT=3000 ATTENDANCE_LOG_FORMAT=console ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Configuration keys
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

	"github.com/warp/attendance-engine/api"
	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/attendance/cache"
	"github.com/warp/attendance-engine/config"
	"github.com/warp/attendance-engine/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var opts []attendance.Option
	if cfg.Cache.Enabled {
		opts = append(opts, attendance.WithCache(cache.NewMemory(cfg.Cache.MaxEntries)))
	}
	engine := attendance.NewEngine(opts...)

	handler := api.NewHandler(engine, logger)
	router := api.NewRouter(handler, cfg.Server.CORS.AllowOrigins)

	flusher := api.NewCacheFlusher(engine, cfg.Cache.FlushInterval, logger)
	flusher.Start()
	defer flusher.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.Bool("cache", cfg.Cache.Enabled),
			zap.Int("cache_max_entries", cfg.Cache.MaxEntries))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
