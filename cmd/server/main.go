package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/gguatit/Today-s-horoscope/ai"
	"github.com/gguatit/Today-s-horoscope/auth"
	"github.com/gguatit/Today-s-horoscope/dedup"
	"github.com/gguatit/Today-s-horoscope/internal"
	"github.com/gguatit/Today-s-horoscope/observability"
	"github.com/gguatit/Today-s-horoscope/repositories"
	"github.com/gguatit/Today-s-horoscope/server"
	"github.com/gguatit/Today-s-horoscope/services"
	"github.com/gguatit/Today-s-horoscope/workers"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories, guard, generator
	quotaRepository := repositories.NewQuotaRepository(db, logger)
	historyRepository := repositories.NewHistoryRepository(db, logger)
	detector := dedup.NewDetector(historyRepository, logger)
	stats := observability.NewStats()
	fortuneService := services.NewFortuneService(quotaRepository, historyRepository, detector, stats, logger, time.Now)
	generator := ai.NewOpenAIGenerator(config.LLMBaseURL, config.LLMAPIKey, config.LLMModel, config.LLMTimeout, logger)
	tokens := auth.NewTokenManager(config.AuthSecret, config.AuthTokenDuration)

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error (HTTP & retention worker)
	errChan := make(chan error, 2)

	// 5. Retention worker on its own schedule, never on the request path.
	retention := workers.NewRetentionWorker(logger, fortuneService, config.CleanupInterval, config.RetentionDays)
	go func() {
		if err := retention.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("retention worker error: %w", err)
		}
	}()

	// 6. HTTP server
	srv := server.New(logger, fortuneService, generator, stats, tokens)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:    address,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("HTTP shutdown error: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.ERROR)
	}
	return options
}
