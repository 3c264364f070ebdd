package listing

import (
	"sort"
	"strings"

	"github.com/timmy/mediagallery/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects how a listing is ordered.
type SortMode string

const (
	SortNone             SortMode = "none"
	SortAlphabeticalAsc  SortMode = "alphabetical_asc"
	SortAlphabeticalDesc SortMode = "alphabetical_desc"
	SortCreatedAsc       SortMode = "created_asc"
	SortCreatedDesc      SortMode = "created_desc"
)

// ParseSortMode maps a settings value to a SortMode.
// Unknown values fall back to SortNone.
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case SortAlphabeticalAsc, SortAlphabeticalDesc, SortCreatedAsc, SortCreatedDesc:
		return mode
	default:
		return SortNone
	}
}

// Sorter orders media items. Caption ordering uses the collation rules of
// the configured language.
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter for the given BCP 47 language tag.
// An unparseable tag falls back to English.
func NewSorter(lang string) *Sorter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Sorter{tag: tag}
}

// Sort returns a new slice ordered by mode; items is never modified.
// SortNone and unknown modes keep the incoming order. Equal keys keep
// their incoming relative order in both directions.
func (s *Sorter) Sort(items []domain.MediaItem, mode SortMode) []domain.MediaItem {
	sorted := make([]domain.MediaItem, len(items))
	copy(sorted, items)

	var cmp func(a, b *domain.MediaItem) int
	switch mode {
	case SortAlphabeticalAsc, SortAlphabeticalDesc:
		// Collators keep internal buffers and are not safe to share.
		col := collate.New(s.tag)
		cmp = func(a, b *domain.MediaItem) int {
			return col.CompareString(a.Caption, b.Caption)
		}
	case SortCreatedAsc, SortCreatedDesc:
		cmp = func(a, b *domain.MediaItem) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	default:
		return sorted
	}

	desc := mode == SortAlphabeticalDesc || mode == SortCreatedDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(&sorted[i], &sorted[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}
