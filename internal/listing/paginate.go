package listing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPageSize is returned when a page is requested with perPage <= 0.
var ErrInvalidPageSize = errors.New("per page must be positive")

// Page is a bounded, ordered window over a result sequence.
type Page[T any] struct {
	Data            []T
	PerPage         int
	StartCursor     string
	EndCursor       string
	HasPreviousPage bool
	HasNextPage     bool
}

// Paginate slices items into a single page.
//
// The window starts at the decoded after cursor, or perPage items before the
// decoded before cursor, or at zero. after wins when both are set. The start
// offset is never clamped: a window that falls partly or fully outside the
// sequence yields a short or empty page. EndCursor is the exclusive end of the
// window and is meant to be sent back verbatim as the next after cursor.
func Paginate[T any](items []T, before, after string, perPage int) (*Page[T], error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, perPage)
	}

	start := 0
	switch {
	case after != "":
		offset, err := DecodeCursor(after)
		if err != nil {
			return nil, fmt.Errorf("after: %w", err)
		}
		if offset > math.MaxInt-perPage {
			return nil, fmt.Errorf("after: %w: offset %d out of range", ErrInvalidCursor, offset)
		}
		start = offset
	case before != "":
		offset, err := DecodeCursor(before)
		if err != nil {
			return nil, fmt.Errorf("before: %w", err)
		}
		start = offset - perPage
	}
	end := start + perPage

	return &Page[T]{
		Data:            window(items, start, end),
		PerPage:         perPage,
		StartCursor:     EncodeCursor(start),
		EndCursor:       EncodeCursor(end),
		HasPreviousPage: start > 0,
		HasNextPage:     end <= len(items),
	}, nil
}

// window returns items[start:end] with both bounds clipped to the slice.
// The result never aliases items.
func window[T any](items []T, start, end int) []T {
	lo := clamp(start, 0, len(items))
	hi := clamp(end, lo, len(items))
	out := make([]T, hi-lo)
	copy(out, items[lo:hi])
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
