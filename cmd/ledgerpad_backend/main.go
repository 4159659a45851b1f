package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ledgerpad/ledgerpad_app/internal/core/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
	"github.com/ledgerpad/ledgerpad_app/internal/handlers"
	"github.com/ledgerpad/ledgerpad_app/internal/platform/config"
	"github.com/ledgerpad/ledgerpad_app/internal/platform/events"
	"github.com/ledgerpad/ledgerpad_app/internal/repositories/database/pgsql"
	"github.com/ledgerpad/ledgerpad_app/pkg/database"
)

// @title LedgerPad API
// @version 1.0
// @description Invoice, payment allocation, and bank reconciliation API.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := runMigrations(cfg, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected")

	eventSink, err := events.NewPostHogSink(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	if err != nil {
		return fmt.Errorf("failed to create event sink: %w", err)
	}
	defer eventSink.Close()

	repos := pgsql.NewRepositoryProvider(pool)
	svcs := services.NewServiceContainer(repos, eventSink, services.AuthConfig{
		JWTSecret:          cfg.JWTSecret,
		JWTExpiry:          cfg.JWTExpiry(),
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleClientSecret,
		GoogleRedirectURL:  cfg.GoogleRedirectURL,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := dto.RegisterCustomValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if err := handlers.RegisterRoutes(router, svcs, cfg, logger); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.ServerPort, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	// golang-migrate selects its pgx driver by URL scheme.
	url := cfg.DatabaseURL
	if strings.HasPrefix(url, "postgres://") {
		url = "pgx5://" + strings.TrimPrefix(url, "postgres://")
	} else if strings.HasPrefix(url, "postgresql://") {
		url = "pgx5://" + strings.TrimPrefix(url, "postgresql://")
	}

	m, err := migrate.New("file://"+cfg.MigrationsDir, url)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migrations up to date")
			return nil
		}
		return err
	}
	logger.Info("migrations applied")
	return nil
}
