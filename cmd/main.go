package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mergington/activities/internal/adapters/http/api"
	"github.com/mergington/activities/internal/adapters/http/site"
	"github.com/mergington/activities/internal/adapters/http/swagger"
	service "github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 10 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	gaugeRefreshInterval = 15 * time.Second
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	// Disable default Go metrics collection to avoid duplicate metrics.
	// The service publishes its own registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Pick the seed catalog: external file when configured, embedded otherwise.
	seed, err := loadRoster(cfg.RosterPath)
	if err != nil {
		os.Stderr.WriteString("failed to load roster: " + err.Error() + "\n")
		return
	}

	// Create and start the service with configuration options
	svc := service.New(
		service.WithLogger(log),
		service.WithRoster(seed),
		service.WithCapacityEnforcement(cfg.EnforceCapacity),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Keep the registry gauges fresh even without traffic.
	go startGaugeRefresher(ctx, svc)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register the student portal at / and /static/
	site.Register(ctx, mux)

	// Register API docs under /api-docs
	swagger.Register(ctx, mux)

	// Register business API routes with the service dependency.
	api.NewServer(svc, svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// loadRoster returns the seed catalog from path, or the embedded default
// when path is empty.
func loadRoster(path string) (roster.Roster, error) {
	if path == "" {
		return roster.Default()
	}
	return roster.FromFile(path)
}

// startGaugeRefresher republishes registry size gauges on a fixed interval.
func startGaugeRefresher(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(gaugeRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.RefreshGauges(ctx)
		}
	}
}
