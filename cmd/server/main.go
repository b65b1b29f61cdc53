package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/api"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/config"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/convert"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	profile, err := cfg.Profile()
	if err != nil {
		log.Error("invalid layout profile", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conv := &convert.Converter{
		Pdf2txtPath:    cfg.Pdf2txtPath,
		Timeout:        cfg.ConversionTimeout,
		NativeFallback: cfg.NativeFallback,
		Log:            log,
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, profile, conv, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()
	}()

	log.Info("starting legisconv",
		"port", cfg.Port,
		"profile", profile.Name,
		"workers", cfg.WorkerCount,
		"pdf2txt", cfg.Pdf2txtPath,
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
