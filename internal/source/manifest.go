package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/timmy/mediagallery/internal/domain"
)

// ManifestFileName is the conventional JSON Lines catalog file name.
const ManifestFileName = "manifest.jsonl"

const maxManifestLine = 1 << 20

// ManifestItem is one line of a JSON Lines catalog manifest.
// Unlike the API projection it carries labels and created_at.
type ManifestItem struct {
	ID                string              `json:"id"`
	Type              string              `json:"type"`
	Alt               string              `json:"alt"`
	Caption           string              `json:"caption"`
	Title             string              `json:"title"`
	Href              string              `json:"href"`
	Hotlink           bool                `json:"hotlink"`
	Attribution       *domain.Attribution `json:"attribution,omitempty"`
	NotifyDownloadURL string              `json:"notify_download_url,omitempty"`
	Labels            []string            `json:"labels"`
	CreatedAt         time.Time           `json:"created_at"`
}

// ToMediaItem converts a manifest line into a domain item.
func (m *ManifestItem) ToMediaItem() domain.MediaItem {
	itemType := m.Type
	if itemType == "" {
		itemType = domain.MediaTypeImage
	}
	labels := domain.StringArray(m.Labels)
	if labels == nil {
		labels = domain.StringArray{}
	}
	return domain.MediaItem{
		ID:                m.ID,
		Type:              itemType,
		Alt:               m.Alt,
		Caption:           m.Caption,
		Title:             m.Title,
		Href:              m.Href,
		Hotlink:           m.Hotlink,
		Attribution:       m.Attribution,
		NotifyDownloadURL: m.NotifyDownloadURL,
		Labels:            labels,
		CreatedAt:         m.CreatedAt,
	}
}

// NewManifestItem converts a domain item into its manifest representation.
func NewManifestItem(item *domain.MediaItem) ManifestItem {
	return ManifestItem{
		ID:                item.ID,
		Type:              item.Type,
		Alt:               item.Alt,
		Caption:           item.Caption,
		Title:             item.Title,
		Href:              item.Href,
		Hotlink:           item.Hotlink,
		Attribution:       item.Attribution,
		NotifyDownloadURL: item.NotifyDownloadURL,
		Labels:            item.Labels,
		CreatedAt:         item.CreatedAt,
	}
}

// DecodeManifest reads a JSON Lines manifest.
// Blank lines are ignored; malformed lines and lines without an id are
// skipped and counted.
// Parameters:
//   - r: manifest reader.
//
// Returns:
//   - []domain.MediaItem: items in file order.
//   - int: number of skipped lines.
//   - error: non-nil if reading fails.
func DecodeManifest(r io.Reader) ([]domain.MediaItem, int, error) {
	items := []domain.MediaItem{}
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxManifestLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var m ManifestItem
		if err := json.Unmarshal([]byte(line), &m); err != nil || m.ID == "" {
			skipped++
			continue
		}
		items = append(items, m.ToMediaItem())
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("error reading manifest: %w", err)
	}
	return items, skipped, nil
}

// EncodeManifest writes items as a JSON Lines manifest.
func EncodeManifest(w io.Writer, items []domain.MediaItem) error {
	enc := json.NewEncoder(w)
	for i := range items {
		if err := enc.Encode(NewManifestItem(&items[i])); err != nil {
			return fmt.Errorf("failed to encode manifest item %s: %w", items[i].ID, err)
		}
	}
	return nil
}
