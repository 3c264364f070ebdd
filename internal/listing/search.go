package listing

import (
	"sort"
	"strings"
	"unicode"

	"github.com/timmy/mediagallery/internal/domain"
	"github.com/xrash/smetrics"
)

const (
	// DefaultThreshold is the looseness used when none is configured.
	DefaultThreshold = 0.25

	exactScore     = 1.0
	substringScore = 0.9

	// Jaro-Winkler tuning: boost similar prefixes of up to four runes once the
	// plain Jaro score passes 0.7.
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// searchField is one weighted text field taking part in search.
type searchField struct {
	weight float64
	value  func(*domain.MediaItem) string
}

var searchFields = []searchField{
	{weight: 1.0, value: func(m *domain.MediaItem) string { return m.Title }},
	{weight: 0.9, value: func(m *domain.MediaItem) string { return m.Caption }},
	{weight: 0.8, value: (*domain.MediaItem).AttributionLabel},
}

// Searcher ranks media items against a free-text query.
type Searcher struct {
	threshold float64
}

// NewSearcher creates a searcher with the given looseness.
// threshold is clamped to [0,1]: 0 keeps exact matches only, 1 keeps
// every item that shares anything with the query.
func NewSearcher(threshold float64) *Searcher {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	return &Searcher{threshold: threshold}
}

type scoredItem struct {
	item  domain.MediaItem
	score float64
}

// Search returns the items matching query ordered by descending relevance.
// An empty query returns items unchanged. Ties keep their incoming order.
func (s *Searcher) Search(items []domain.MediaItem, query string) []domain.MediaItem {
	q := normalize(query)
	if q == "" {
		return items
	}
	qTokens := tokenize(q)
	minSimilarity := 1 - s.threshold

	matches := make([]scoredItem, 0)
	for i := range items {
		best := 0.0
		matched := false
		for _, f := range searchFields {
			sim := similarity(q, qTokens, f.value(&items[i]))
			if sim <= 0 || sim < minSimilarity {
				continue
			}
			matched = true
			if weighted := sim * f.weight; weighted > best {
				best = weighted
			}
		}
		if matched {
			matches = append(matches, scoredItem{item: items[i], score: best})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]domain.MediaItem, len(matches))
	for i, m := range matches {
		result[i] = m.item
	}
	return result
}

// similarity scores a single field against the normalized query in [0,1].
func similarity(q string, qTokens []string, field string) float64 {
	f := normalize(field)
	if f == "" {
		return 0
	}
	if f == q {
		return exactScore
	}
	if strings.Contains(f, q) {
		return substringScore
	}

	fTokens := tokenize(f)
	if len(qTokens) == 0 || len(fTokens) == 0 {
		return 0
	}
	total := 0.0
	for _, qt := range qTokens {
		best := 0.0
		for _, ft := range fTokens {
			if sim := smetrics.JaroWinkler(qt, ft, jwBoostThreshold, jwPrefixSize); sim > best {
				best = sim
			}
		}
		total += best
	}
	score := total / float64(len(qTokens))
	// Token matches never outrank a literal substring hit.
	if score > substringScore {
		score = substringScore
	}
	return score
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenize splits text on anything that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
