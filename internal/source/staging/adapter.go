package staging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/source"
)

// Adapter implements source.Provider over a JSON Lines manifest on local disk.
type Adapter struct {
	path string
}

// NewAdapter creates a new staging adapter.
// Parameters:
//   - path: manifest file path, or a directory containing manifest.jsonl.
//
// Returns:
//   - *Adapter: initialized staging adapter.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// Name returns "manifest".
func (a *Adapter) Name() string {
	return "manifest"
}

// Load reads every item from the manifest in file order.
func (a *Adapter) Load(ctx context.Context) ([]domain.MediaItem, error) {
	manifestPath, err := a.resolve()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	items, skipped, err := source.DecodeManifest(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", manifestPath, err)
	}
	if skipped > 0 {
		logger.CtxWarn(ctx, "Skipped %d malformed manifest lines in %s", skipped, manifestPath)
	}
	return items, nil
}

// resolve returns the manifest file path, descending into a directory if needed.
func (a *Adapter) resolve() (string, error) {
	info, err := os.Stat(a.path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("manifest not found: %s. Run the seed command to create one", a.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat manifest: %w", err)
	}
	if info.IsDir() {
		return filepath.Join(a.path, source.ManifestFileName), nil
	}
	return a.path, nil
}
