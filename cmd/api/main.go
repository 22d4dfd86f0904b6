package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/betacom-hq/backoffice/config"
	"github.com/betacom-hq/backoffice/internal/app"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		basic := logger.NewLogger("info")
		basic.WithField("error", err.Error()).Fatal("Failed to load configuration")
		os.Exit(1)
	}

	appLogger := logger.NewLogger(cfg.LogLevel)
	if err := run(cfg, appLogger); err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger logger.Logger) error {
	instance := app.NewApp(cfg, app.WithLogger(appLogger))
	if err := instance.Initialize(); err != nil {
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)
	go func() {
		serverError <- instance.Start()
	}()

	select {
	case err := <-serverError:
		return err
	case sig := <-shutdown:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return instance.Shutdown(ctx)
	}
}
