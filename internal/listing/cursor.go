package listing

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCursor is returned when a before/after cursor cannot be decoded
// into a non-negative offset.
var ErrInvalidCursor = errors.New("invalid cursor")

// EncodeCursor encodes an offset into an opaque cursor string.
func EncodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeCursor decodes a cursor produced by EncodeCursor back into its offset.
// Parameters:
//   - cursor: opaque cursor string.
//
// Returns:
//   - int: decoded offset.
//   - error: wraps ErrInvalidCursor when the cursor is malformed or negative.
func DecodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cursor))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not base64", ErrInvalidCursor, cursor)
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not hold an integer offset", ErrInvalidCursor, cursor)
	}
	if offset < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrInvalidCursor, offset)
	}
	return offset, nil
}
