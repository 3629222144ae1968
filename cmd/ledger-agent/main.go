package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ledger-agent/internal/config"
	"ledger-agent/internal/database"
	"ledger-agent/internal/repositories"
	"ledger-agent/internal/server"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}()

	repo := repositories.NewTransactionRepository(db.DB)

	pipeline, err := server.NewPipeline(cfg, repo, prometheus.DefaultRegisterer, logger)
	if err != nil {
		logger.Error("Failed to build query pipeline", "error", err)
		os.Exit(1)
	}

	e := server.NewRouter(server.Dependencies{
		Config:       cfg,
		QueryService: pipeline.QueryService,
		Resolver:     pipeline.Resolver,
		Store:        db,
		Transactions: repo,
		Generator:    pipeline.Generator,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("Starting ledger-agent",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"intent_provider", cfg.Ledger.IntentProvider,
			"reply_provider", cfg.Ledger.ReplyProvider,
			"auth_enabled", cfg.AuthEnabled(),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
