package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexiqai/tts-server/internal/activitylog"
	"github.com/lexiqai/tts-server/internal/config"
	"github.com/lexiqai/tts-server/internal/observability"
	"github.com/lexiqai/tts-server/internal/server"
	"github.com/lexiqai/tts-server/internal/tts"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use fmt for fatal errors before logger is initialized
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	observability.InitLogger(cfg.LogLevel, cfg.LogPretty)
	logger := observability.GetLogger()

	logger.Info().
		Str("port", cfg.Port).
		Str("service", cfg.ServiceName).
		Strs("supported_languages", cfg.SupportedLanguages).
		Str("log_level", cfg.LogLevel).
		Bool("metrics_enabled", cfg.MetricsEnabled).
		Msg("TTS server starting")

	if _, ok := os.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS"); !ok {
		logger.Warn().Msg("GOOGLE_APPLICATION_CREDENTIALS not set, relying on ambient application default credentials")
	}

	ctx := context.Background()

	// Initialize the Google TTS client. Failure is not fatal: the server
	// runs degraded and every synthesis endpoint reports unavailable.
	var synth tts.Synthesizer
	client, err := tts.NewClient(ctx, cfg.SupportedLanguages, time.Duration(cfg.TTSTimeout)*time.Second)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize Google TTS client, continuing degraded")
	} else {
		synth = client
		logger.Info().Msg("Google TTS client initialized successfully")
	}

	// Initialize the activity log pool when configured. Failure only
	// disables activity logging, never the service.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = newPool(ctx, cfg)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize activity log pool, activity logging disabled")
			pool = nil
		} else {
			logger.Info().
				Int32("min_conns", cfg.DBPoolMinConns).
				Int32("max_conns", cfg.DBPoolMaxConns).
				Msg("Activity log pool initialized")
		}
	} else {
		logger.Info().Msg("DATABASE_URL not set, activity logging disabled")
	}

	recorder := activitylog.NewRecorder(pool)
	srv := server.New(cfg, synth, recorder, pool)

	// Create HTTP server with timeouts. The write timeout leaves headroom
	// over the synthesis call bound.
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.TTSTimeout)*time.Second + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	if pool != nil {
		pool.Close()
	}
	if client != nil {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close TTS client")
		}
	}

	logger.Info().Msg("Server exited gracefully")
}

// newPool builds the bounded activity log connection pool
func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	poolCfg.MinConns = cfg.DBPoolMinConns
	poolCfg.MaxConns = cfg.DBPoolMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return pool, nil
}
