package listing

import "github.com/timmy/mediagallery/internal/domain"

// Settings are the gallery settings that shape a listing, independent of
// how the transport encodes them.
type Settings struct {
	Query string
	Criteria
	Sort SortMode
}

// Request is one listing request.
type Request struct {
	Settings Settings
	After    string
	Before   string
	PerPage  int
}

// Pipeline runs search, filter, sort and pagination in that order.
type Pipeline struct {
	searcher *Searcher
	sorter   *Sorter
}

// Config holds tuning for the pipeline stages.
type Config struct {
	SearchThreshold float64
	Language        string
}

// NewPipeline creates a pipeline. A nil cfg uses DefaultThreshold and English collation.
func NewPipeline(cfg *Config) *Pipeline {
	threshold := DefaultThreshold
	lang := "en"
	if cfg != nil {
		threshold = cfg.SearchThreshold
		if cfg.Language != "" {
			lang = cfg.Language
		}
	}
	return &Pipeline{
		searcher: NewSearcher(threshold),
		sorter:   NewSorter(lang),
	}
}

// ListPage produces a single page of items for req.
// The only error source is cursor decoding (ErrInvalidCursor) or a
// non-positive page size (ErrInvalidPageSize).
func (p *Pipeline) ListPage(items []domain.MediaItem, req Request) (*Page[domain.MediaItem], error) {
	found := p.searcher.Search(items, req.Settings.Query)
	filtered := Filter(found, req.Settings.Criteria)
	ordered := p.sorter.Sort(filtered, req.Settings.Sort)
	return Paginate(ordered, req.Before, req.After, req.PerPage)
}
