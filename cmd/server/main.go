package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/guessparty/guessparty/internal/api"
	"github.com/guessparty/guessparty/internal/factory"
	"github.com/guessparty/guessparty/internal/services/session"
	redisstorage "github.com/guessparty/guessparty/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: factory.StorageType(getEnvOrDefault("STORAGE_TYPE", string(factory.StorageTypeMemory))),
		Session:     sessionConfigFromEnv(logger),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.Redis = redisCfg
	}

	// Assemble the application
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("close error", slog.String("error", err.Error()))
		}
	}()

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(app.Router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodic sweep of abandoned sessions and idle SSE hubs
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := app.Sessions.CleanupEmptySessions(ctx); err != nil {
					logger.Warn("session cleanup failed", slog.String("error", err.Error()))
				}
				app.HubManager.CleanupEmptyHubs()
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// sessionConfigFromEnv overlays environment overrides on the defaults
func sessionConfigFromEnv(logger *slog.Logger) session.Config {
	cfg := session.DefaultConfig()

	if v := os.Getenv("ROUND_DURATION_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			logger.Error("invalid ROUND_DURATION_SECONDS", slog.String("value", v))
			os.Exit(1)
		}
		cfg.RoundDuration = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("MAX_ROUNDS"); v != "" {
		rounds, err := strconv.Atoi(v)
		if err != nil || rounds <= 0 {
			logger.Error("invalid MAX_ROUNDS", slog.String("value", v))
			os.Exit(1)
		}
		cfg.MaxRounds = rounds
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
