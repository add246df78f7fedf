package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saturnino-fabrica-de-software/skintone/internal/api"
	"github.com/saturnino-fabrica-de-software/skintone/internal/audit"
	"github.com/saturnino-fabrica-de-software/skintone/internal/config"
	"github.com/saturnino-fabrica-de-software/skintone/internal/face"
	"github.com/saturnino-fabrica-de-software/skintone/internal/palette"
	"github.com/saturnino-fabrica-de-software/skintone/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting Skin Tone API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("locator", cfg.Locator),
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Locator is loaded once and shared by every request
	loc, err := face.NewLocator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create locator: %w", err)
	}
	if closer, ok := loc.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Error("failed to close locator", slog.Any("error", err))
			}
		}()
	}

	tone, err := palette.NewToneClassifier(cfg.ToneClassifier, cfg.ToneLabel)
	if err != nil {
		return fmt.Errorf("failed to create tone classifier: %w", err)
	}

	analyzer := service.NewAnalyzer(loc, tone, audit.NewSlogLogger(logger), logger).
		WithPatchHalfSize(cfg.PatchHalfSize)

	// Setup router
	router := api.NewRouter(logger, api.Options{
		BodyLimit:        cfg.BodyLimit,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		RateLimitMax:     cfg.RateLimitMax,
		RateLimitWindow:  cfg.RateLimitWindow,
	}, &api.Dependencies{
		Analyzer: analyzer,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening",
			slog.String("addr", addr),
			slog.String("locator", loc.Name()),
			slog.String("variant", string(loc.Variant())),
		)
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")

	return nil
}
