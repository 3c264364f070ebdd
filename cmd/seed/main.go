package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/repository"
	"github.com/timmy/mediagallery/internal/source"
	"github.com/timmy/mediagallery/internal/source/mock"
	"github.com/timmy/mediagallery/internal/source/object"
	"github.com/timmy/mediagallery/internal/storage"
)

type options struct {
	target string
	count  int
	seed   uint64
	out    string
}

type bucketEnsurer interface {
	EnsureBucket(ctx context.Context) error
}

func main() {
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "mediagallery-seed",
	})
	logger.SetDefaultLogger(appLogger)

	target := flag.String("target", "manifest", "Where to write the catalog: database, object or manifest")
	count := flag.Int("count", 0, "Number of items to generate (default catalog.mock_count)")
	seed := flag.Uint64("seed", 0, "Generator seed (default catalog.mock_seed)")
	out := flag.String("out", "", "Manifest path for -target manifest (default catalog.manifest_path)")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	ctx, cancel := context.WithCancel(appLogger.WithContext(context.Background()))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.Info("Received shutdown signal, canceling...")
		cancel()
	}()

	opts := options{target: *target, count: *count, seed: *seed, out: *out}
	if err := run(ctx, cfg, opts); err != nil {
		appLogger.WithError(err).Fatal("Seeding failed")
	}
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	if opts.count <= 0 {
		opts.count = cfg.Catalog.MockCount
	}
	if opts.seed == 0 {
		opts.seed = cfg.Catalog.MockSeed
	}

	items, err := mock.NewGenerator(mock.Options{
		Count:     opts.count,
		Seed:      opts.seed,
		PublicURL: cfg.Server.PublicURL,
	}).Generate()
	if err != nil {
		return err
	}

	logger.FromContext(ctx).WithFields(logger.Fields{
		"target": opts.target,
		"count":  len(items),
		"seed":   opts.seed,
	}).Info("Starting seed")

	switch opts.target {
	case "database":
		return seedDatabase(ctx, cfg, items)
	case "object":
		store, err := storage.NewStorage(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		return seedObject(ctx, store, cfg.Catalog.ObjectKey, items)
	case "manifest":
		path := opts.out
		if path == "" {
			path = cfg.Catalog.ManifestPath
		}
		return seedManifest(ctx, path, items)
	default:
		return fmt.Errorf("unknown target %q", opts.target)
	}
}

func seedDatabase(ctx context.Context, cfg *config.Config, items []domain.MediaItem) error {
	dbCfg := cfg.Database
	dbCfg.AutoMigrate = true
	db, err := repository.InitDB(&dbCfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	repo := repository.NewMediaRepository(db)
	if err := repo.ReplaceAll(ctx, items); err != nil {
		return err
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	logger.With(logger.Fields{logger.FieldTotal: total}).Info(ctx, "Database seeded")
	return nil
}

func seedObject(ctx context.Context, store storage.ObjectStorage, key string, items []domain.MediaItem) error {
	if b, ok := store.(bucketEnsurer); ok {
		if err := b.EnsureBucket(ctx); err != nil {
			return err
		}
	}
	url, err := object.Publish(ctx, store, key, items)
	if err != nil {
		return err
	}
	logger.With(logger.Fields{"url": url}).WithCount(len(items)).Info(ctx, "Catalog published")
	return nil
}

func seedManifest(ctx context.Context, path string, items []domain.MediaItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	if err := source.EncodeManifest(f, items); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	logger.With(logger.Fields{"path": path}).WithCount(len(items)).Info(ctx, "Manifest written")
	return nil
}
