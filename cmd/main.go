package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "viralink/internal/adapter/http"
	"viralink/internal/adapter/postgres"
	"viralink/internal/adapter/usecase"
	"viralink/internal/auth"
	"viralink/internal/config"
	"viralink/internal/db"
)

// main is the entry point of the viralink server. It loads configuration,
// optionally runs database migrations and seeds demo data, initializes
// the database pool, repositories and services, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.App.BaseURL.String()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	users := postgres.NewUserRepository(pool)
	profiles := postgres.NewProfileRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	enrollments := postgres.NewEnrollmentRepository(pool)

	tokens := auth.NewTokens(cfg.Auth)
	profileSvc := usecase.NewProfileUseCase(profiles)
	baseURL := cfg.App.BaseURL.String()

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Auth:        usecase.NewAuthUseCase(users, tokens),
		Profiles:    profileSvc,
		Campaigns:   usecase.NewCampaignUseCase(profileSvc, campaigns, enrollments),
		Enrollments: usecase.NewEnrollmentUseCase(profileSvc, campaigns, enrollments, baseURL),
		Dashboard:   usecase.NewDashboardUseCase(profileSvc, campaigns, enrollments),
		Verifier:    tokens,
		DB:          pool,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// The signal context is already cancelled at this point; the drain
	// window needs a fresh parent.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
