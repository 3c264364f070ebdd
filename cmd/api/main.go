package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/mediagallery/internal/api"
	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/listing"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/service"
	"github.com/timmy/mediagallery/internal/source/registry"
)

func main() {
	// CONFIG_PATH overrides the ./configs lookup in deployments.
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.GetDefault().WithError(err).Fatal("Failed to load config")
	}

	appLogger := logger.New(&cfg.Log)
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	ctx := appLogger.WithContext(context.Background())

	provider, closeProvider, err := registry.New(ctx, cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize catalog provider")
	}

	pipeline := listing.NewPipeline(&listing.Config{
		SearchThreshold: cfg.Listing.SearchThreshold,
		Language:        cfg.Listing.Language,
	})

	notifier := service.NewDownloadNotifier(&service.DownloadNotifierConfig{
		WebhookURL: cfg.Notify.WebhookURL,
		Timeout:    cfg.Notify.Timeout,
	})
	if notifier.IsEnabled() {
		appLogger.WithField("webhook_url", cfg.Notify.WebhookURL).Info("Download webhook enabled")
	}

	mediaService, err := service.LoadMediaService(ctx, provider, pipeline, notifier, &service.MediaConfig{
		PublicURL: cfg.Server.PublicURL,
		Folders:   cfg.Folders,
	})
	if cerr := closeProvider(); cerr != nil {
		appLogger.WithError(cerr).Warn("Failed to release catalog provider")
	}
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load catalog")
	}

	router := api.SetupRouter(mediaService, cfg, appLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port":     cfg.Server.Port,
			"mode":     cfg.Server.Mode,
			"provider": provider.Name(),
			"items":    mediaService.Count(),
		}).Infof("Server running at http://localhost:%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
