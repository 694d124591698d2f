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

	"github.com/joho/godotenv"
	"github.com/pagelens/pagelens/analyzer"
	"github.com/pagelens/pagelens/api"
	"github.com/pagelens/pagelens/config"
	"github.com/pagelens/pagelens/history"
	"github.com/pagelens/pagelens/lighthouse"
	"github.com/pagelens/pagelens/scraper"
	"github.com/pagelens/pagelens/speller"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("pagelens starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"maxPages", cfg.Browser.MaxPages,
	)

	// ── 3. Initialise scraper (launches browser) ────────────────────
	sc, err := scraper.NewScraper(cfg.Browser, cfg.Acquirer)
	if err != nil {
		slog.Error("failed to initialise scraper", "error", err)
		os.Exit(1)
	}
	defer sc.Close()

	// ── 4. Initialise correction oracles ────────────────────────────
	dictionary := speller.NewLanguageTool(
		&http.Client{Timeout: cfg.Speller.Timeout},
		cfg.Speller.LanguageToolURL,
		cfg.Speller.Language,
		cfg.Speller.Timeout,
	)
	model := speller.NewModelCorrector(
		cfg.Speller.LLMBaseURL,
		cfg.Speller.LLMAPIKey,
		cfg.Speller.LLMModel,
	)
	merger := speller.NewMerger(dictionary, model)

	// ── 5. Initialise performance auditor and session history ───────
	auditor := lighthouse.NewRunner(
		cfg.Lighthouse.Binary,
		cfg.Lighthouse.OutputPath,
		cfg.Lighthouse.PollAttempts,
		cfg.Lighthouse.PollInterval,
	)
	hist := history.New(cfg.History.MaxEntries)

	an := analyzer.New(sc, merger, auditor, hist, cfg.Acquirer)

	// ── 6. Setup router ─────────────────────────────────────────────
	startTime := time.Now()
	router := api.NewRouter(an, sc, cfg, startTime)

	// ── 7. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 8. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	// Give in-flight requests 5 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	// sc.Close() runs via defer — drains page pool and kills Chrome.
	slog.Info("pagelens stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
