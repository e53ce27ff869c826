package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/billforge/invoice-engine/internal/api"
	"github.com/billforge/invoice-engine/internal/assets"
	"github.com/billforge/invoice-engine/internal/config"
	"github.com/billforge/invoice-engine/internal/invoice"
	"github.com/billforge/invoice-engine/internal/logger"
)

// Version is set during build via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	if err := assets.EnsureDirs(cfg.UploadDir, cfg.OutputDir); err != nil {
		logg.Fatalw("failed to create working directories", "error", err)
	}

	gin.SetMode(gin.ReleaseMode)

	names := assets.UniqueNames()
	store := assets.NewStore(cfg.UploadDir, names, logg)
	generator := invoice.NewGenerator(cfg.OutputDir, cfg.FontPath, names, logg)
	server := api.NewServer(store, generator, logg, cfg.MaxUploadBytes)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(),
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logg.Infow("starting server", "version", Version, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrChan:
		logg.Fatalw("server error", "error", err)
	case sig := <-sigChan:
		logg.Infow("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logg.Errorw("shutdown failed", "error", err)
		}
	}
}
