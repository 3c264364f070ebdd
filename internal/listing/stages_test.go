package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/mediagallery/internal/domain"
)

func ids(items []domain.MediaItem) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}

func sampleItems() []domain.MediaItem {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.MediaItem{
		{
			ID:          "1",
			Type:        domain.MediaTypeImage,
			Title:       "sunset-beach.jpg",
			Caption:     "golden hour",
			Attribution: &domain.Attribution{Label: "Ada Lovelace", Href: "https://example.com/ada"},
			Labels:      domain.StringArray{"shared"},
			CreatedAt:   base.Add(2 * time.Hour),
		},
		{
			ID:        "2",
			Type:      domain.MediaTypeImage,
			Title:     "mountain.jpg",
			Caption:   "sunset over peaks",
			Hotlink:   true,
			CreatedAt: base,
		},
		{
			ID:          "3",
			Type:        domain.MediaTypeImage,
			Title:       "city.png",
			Caption:     "night lights",
			Attribution: &domain.Attribution{Label: "Grace Hopper"},
			Labels:      domain.StringArray{"shared", "favorite"},
			CreatedAt:   base.Add(time.Hour),
		},
	}
}

func TestSearcher_EmptyQueryIsIdentity(t *testing.T) {
	items := sampleItems()
	s := NewSearcher(DefaultThreshold)

	assert.Equal(t, items, s.Search(items, ""))
	assert.Equal(t, items, s.Search(items, "   "))
}

func TestSearcher_ExactTitleRanksFirst(t *testing.T) {
	got := NewSearcher(DefaultThreshold).Search(sampleItems(), "sunset-beach.jpg")
	require.NotEmpty(t, got)
	assert.Equal(t, "1", got[0].ID)
}

func TestSearcher_UnrelatedQueryIsEmpty(t *testing.T) {
	got := NewSearcher(DefaultThreshold).Search(sampleItems(), "qqqq")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearcher_ToleratesMisspelling(t *testing.T) {
	got := NewSearcher(DefaultThreshold).Search(sampleItems(), "sunest")
	assert.ElementsMatch(t, []string{"1", "2"}, ids(got))
}

func TestSearcher_RanksByFieldWeight(t *testing.T) {
	// Both items contain "sunset"; the title hit outweighs the caption hit.
	got := NewSearcher(DefaultThreshold).Search(sampleItems(), "Sunset")
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestSearcher_MatchesAttributionLabel(t *testing.T) {
	got := NewSearcher(DefaultThreshold).Search(sampleItems(), "grace hopper")
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestSearcher_TiesKeepIncomingOrder(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "x", Title: "cat"},
		{ID: "y", Title: "dog"},
		{ID: "z", Title: "cat"},
	}
	got := NewSearcher(DefaultThreshold).Search(items, "cat")
	assert.Equal(t, []string{"x", "z"}, ids(got))
}

func TestSearcher_ThresholdControlsLooseness(t *testing.T) {
	items := sampleItems()

	strict := NewSearcher(0).Search(items, "sunest")
	assert.Empty(t, strict)

	exact := NewSearcher(0).Search(items, "golden hour")
	assert.Equal(t, []string{"1"}, ids(exact))

	loose := NewSearcher(1).Search(items, "sunest")
	assert.GreaterOrEqual(t, len(loose), 2)
}

func TestFilter(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "1", Labels: domain.StringArray{"shared"}},
		{ID: "2", Labels: domain.StringArray{}},
		{ID: "3", Labels: domain.StringArray{"shared", "favorite"}},
	}

	t.Run("no criteria is identity", func(t *testing.T) {
		assert.Equal(t, items, Filter(items, Criteria{}))
	})

	t.Run("label membership", func(t *testing.T) {
		assert.Equal(t, []string{"1", "3"}, ids(Filter(items, Criteria{Label: "shared"})))
	})

	t.Run("label is not a prefix match", func(t *testing.T) {
		assert.Empty(t, Filter(items, Criteria{Label: "share"}))
	})
}

func TestFilter_CombinedCriteria(t *testing.T) {
	items := sampleItems()
	hot := true
	cold := false

	assert.Equal(t, []string{"2"}, ids(Filter(items, Criteria{Hotlink: &hot})))
	assert.Equal(t, []string{"1", "3"}, ids(Filter(items, Criteria{Hotlink: &cold})))
	assert.Equal(t, []string{"3"}, ids(Filter(items, Criteria{Label: "favorite", Type: domain.MediaTypeImage})))
	assert.Empty(t, Filter(items, Criteria{Label: "shared", Hotlink: &hot}))
	assert.Empty(t, Filter(items, Criteria{Type: "video"}))
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortAlphabeticalAsc, ParseSortMode("alphabetical_asc"))
	assert.Equal(t, SortCreatedDesc, ParseSortMode(" CREATED_DESC "))
	assert.Equal(t, SortNone, ParseSortMode(""))
	assert.Equal(t, SortNone, ParseSortMode("popularity"))
}

func TestSorter_Alphabetical(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "1", Caption: "banana"},
		{ID: "2", Caption: "apple"},
	}
	s := NewSorter("en")

	asc := s.Sort(items, SortAlphabeticalAsc)
	assert.Equal(t, []string{"2", "1"}, ids(asc))
	assert.Equal(t, []string{"1", "2"}, ids(items), "input must not be mutated")

	desc := s.Sort(items, SortAlphabeticalDesc)
	assert.Equal(t, []string{"1", "2"}, ids(desc))
}

func TestSorter_UsesCollation(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "zebra", Caption: "zebra"},
		{ID: "eclair", Caption: "Éclair"},
		{ID: "Banana", Caption: "Banana"},
		{ID: "apple", Caption: "apple"},
	}
	got := NewSorter("en").Sort(items, SortAlphabeticalAsc)
	assert.Equal(t, []string{"apple", "Banana", "eclair", "zebra"}, ids(got))
}

func TestSorter_CreatedIsStable(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.MediaItem{
		{ID: "a", CreatedAt: t0},
		{ID: "b", CreatedAt: t0.Add(time.Hour)},
		{ID: "c", CreatedAt: t0},
		{ID: "d", CreatedAt: t0.Add(time.Hour)},
	}
	s := NewSorter("en")

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(s.Sort(items, SortCreatedDesc)))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(s.Sort(items, SortCreatedAsc)))
}

func TestSorter_NoneIsIdentity(t *testing.T) {
	items := sampleItems()
	s := NewSorter("en")

	assert.Equal(t, items, s.Sort(items, SortNone))
	assert.Equal(t, items, s.Sort(items, SortMode("bogus")))
}

func TestNewSorter_BadLanguageFallsBack(t *testing.T) {
	s := NewSorter("not a tag!")
	got := s.Sort([]domain.MediaItem{{ID: "b", Caption: "b"}, {ID: "a", Caption: "a"}}, SortAlphabeticalAsc)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}
