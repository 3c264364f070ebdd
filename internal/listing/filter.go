package listing

import "github.com/timmy/mediagallery/internal/domain"

// Criteria narrows a listing to items matching every set field.
// A zero value field places no constraint.
type Criteria struct {
	Label   string
	Type    string
	Hotlink *bool
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Label == "" && c.Type == "" && c.Hotlink == nil
}

func (c Criteria) matches(m *domain.MediaItem) bool {
	if c.Label != "" && !m.Labels.Contains(c.Label) {
		return false
	}
	if c.Type != "" && m.Type != c.Type {
		return false
	}
	if c.Hotlink != nil && m.Hotlink != *c.Hotlink {
		return false
	}
	return true
}

// Filter returns the items satisfying all criteria, in their incoming order.
func Filter(items []domain.MediaItem, criteria Criteria) []domain.MediaItem {
	if criteria.IsZero() {
		return items
	}
	out := make([]domain.MediaItem, 0, len(items))
	for i := range items {
		if criteria.matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
