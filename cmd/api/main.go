package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mizan-labs/mizan/internal/api/handlers"
	"github.com/mizan-labs/mizan/internal/api/middleware"
	"github.com/mizan-labs/mizan/internal/cache"
	"github.com/mizan-labs/mizan/internal/config"
	"github.com/mizan-labs/mizan/internal/extraction"
	"github.com/mizan-labs/mizan/internal/logger"
	"github.com/mizan-labs/mizan/internal/pipeline"
	"github.com/mizan-labs/mizan/internal/translate"
)

func main() {
	// Parse command-line flags
	var (
		port       = flag.String("port", "", "HTTP server port (overrides config)")
		configPath = flag.String("config", "", "Path to YAML config file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := logger.New(false)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *port != "" {
		cfg.Port = *port
	}

	log := logger.New(cfg.Debug)

	// Wire the pipeline
	extractor := extraction.New(cfg.GeminiModel)
	translator := translate.New(cfg.GeminiModel)
	p := pipeline.New(extractor, translator, cfg.Standard(), log)

	responseCache := cache.New(cfg.CacheTTL)

	// Initialize handlers
	processHandler := handlers.NewProcessHandler(p, responseCache, cfg.MaxInputLength, log)
	standardsHandler := handlers.NewStandardsHandler(responseCache, log)

	// Create router
	mux := http.NewServeMux()

	mux.HandleFunc("/api/process", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			processHandler.Process(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/standards", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			standardsHandler.List(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Health check endpoint
	mux.HandleFunc("/health", handlers.Health)

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("model", cfg.GeminiModel).
			Str("default_standard", cfg.DefaultStandard).
			Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
