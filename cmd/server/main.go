package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mihrab-app/mihrab/internal/aladhan"
	xredis "github.com/mihrab-app/mihrab/internal/redis"
	"github.com/mihrab-app/mihrab/internal/server"
	"github.com/mihrab-app/mihrab/internal/storage"
	"github.com/mihrab-app/mihrab/internal/timetable"
	"github.com/mihrab-app/mihrab/internal/xslog"
)

const shutdownGracePeriod = 2 * time.Second

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := server.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	backend, err := initBackend(ctx, cfg, loc, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close backend", xslog.Error(err))
		}
	}()

	source := timetable.NewCachedSource(
		timetable.NewAlAdhanSource(aladhan.New(), aladhan.Params{
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
			Method:    cfg.Method,
			School:    cfg.School,
		}, loc),
		storage.NewStore(backend, cfg.CacheKey(), cfg.CacheTTL),
		logger,
	)
	loader := timetable.NewLoader(source, loc)

	handler := server.NewHandler(loader, loc)
	routes := server.Routes(handler, backend, cfg, logger)

	shutdownCoordinator := server.NewShutdownCoordinator(shutdownGracePeriod)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return shutdownCoordinator.BaseContext()
		},
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	shutdownCoordinator.InitiateShutdown()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initBackend(ctx context.Context, cfg server.Config, loc *time.Location, logger *slog.Logger) (storage.Backend, error) {
	if cfg.Redis.URL == "" {
		logger.InfoContext(ctx, "initializing in-memory timetable cache")
		return storage.NewMemoryBackend(), nil
	}

	logger.InfoContext(ctx, "initializing redis timetable cache")
	client, err := xredis.New(ctx, xredis.Config{URL: cfg.Redis.URL})
	if err != nil {
		return nil, err
	}
	return storage.NewRedisBackend(client, loc), nil
}
