package source

import (
	"context"
	"errors"

	"github.com/timmy/mediagallery/internal/domain"
)

// ErrUnknownProvider is returned when a catalog provider name is not recognized.
var ErrUnknownProvider = errors.New("unknown catalog provider")

// Provider supplies the media catalog the listing service serves.
// The returned order is the base order of every listing.
type Provider interface {
	// Name returns a short identifier for logs, e.g. "mock" or "database".
	Name() string

	// Load reads the full catalog.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	// Returns:
	//   - []domain.MediaItem: catalog in base order.
	//   - error: non-nil if the catalog cannot be read.
	Load(ctx context.Context) ([]domain.MediaItem, error)
}

// Static is a Provider over an in-memory slice, used by tests and seeding.
type Static struct {
	Items []domain.MediaItem
}

// Name returns "static".
func (s *Static) Name() string { return "static" }

// Load returns a copy of the configured items.
func (s *Static) Load(ctx context.Context) ([]domain.MediaItem, error) {
	out := make([]domain.MediaItem, len(s.Items))
	copy(out, s.Items)
	return out, nil
}
