package database

import (
	"context"
	"fmt"

	"github.com/timmy/mediagallery/internal/domain"
)

// Lister is the subset of repository.MediaRepository the adapter needs.
type Lister interface {
	ListAll(ctx context.Context) ([]domain.MediaItem, error)
}

// Adapter implements source.Provider over the SQL catalog.
type Adapter struct {
	repo Lister
}

// NewAdapter creates a provider backed by repo.
func NewAdapter(repo Lister) *Adapter {
	return &Adapter{repo: repo}
}

// Name returns "database".
func (a *Adapter) Name() string {
	return "database"
}

// Load reads the catalog ordered by position.
func (a *Adapter) Load(ctx context.Context) ([]domain.MediaItem, error) {
	items, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from database: %w", err)
	}
	return items, nil
}
