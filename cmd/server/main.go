package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-admin-service/internal/config"
	"github.com/light-bringer/catalog-admin-service/internal/services"
	transport "github.com/light-bringer/catalog-admin-service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("failed to run server")
	}
}

func run() error {
	ctx := context.Background()

	// .env is a local development convenience; absence is not an error
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	log.SetFormatter(&log.JSONFormatter{})

	log.WithFields(log.Fields{
		"spanner": cfg.Spanner.DSN(),
		"addr":    cfg.Server.Addr(),
	}).Info("starting catalog admin service")

	serviceOpts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	server := transport.NewServer(cfg.Server.Addr(), serviceOpts.Handler)

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr()).Info("HTTP server listening")
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
