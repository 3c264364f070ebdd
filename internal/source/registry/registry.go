// Package registry builds the configured catalog provider.
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/repository"
	"github.com/timmy/mediagallery/internal/source"
	"github.com/timmy/mediagallery/internal/source/database"
	"github.com/timmy/mediagallery/internal/source/mock"
	"github.com/timmy/mediagallery/internal/source/object"
	"github.com/timmy/mediagallery/internal/source/staging"
	"github.com/timmy/mediagallery/internal/storage"
)

// Provider names accepted in catalog.provider.
const (
	ProviderMock     = "mock"
	ProviderManifest = "manifest"
	ProviderDatabase = "database"
	ProviderObject   = "object"
)

// Closer releases resources held by a provider.
type Closer func() error

func noop() error { return nil }

// New returns the provider named by cfg.Catalog.Provider.
// The returned Closer must be called once the catalog has been loaded.
func New(ctx context.Context, cfg *config.Config) (source.Provider, Closer, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Catalog.Provider))
	switch name {
	case ProviderMock, "":
		return mock.NewAdapter(mock.Options{
			Count:     cfg.Catalog.MockCount,
			Seed:      cfg.Catalog.MockSeed,
			PublicURL: cfg.Server.PublicURL,
		}), noop, nil

	case ProviderManifest:
		return staging.NewAdapter(cfg.Catalog.ManifestPath), noop, nil

	case ProviderDatabase:
		db, err := repository.InitDB(&cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closer := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return database.NewAdapter(repository.NewMediaRepository(db)), closer, nil

	case ProviderObject:
		store, err := storage.NewStorage(&cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return object.NewAdapter(store, cfg.Catalog.ObjectKey), noop, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", source.ErrUnknownProvider, cfg.Catalog.Provider)
	}
}
