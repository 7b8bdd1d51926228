package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 50

// MaxLimit caps the page size.
const MaxLimit = 500

// Cursor identifies one row of a listing ordered by (date, createdAt, id).
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// EncodeCursor creates an opaque, URL safe token for c.
func EncodeCursor(c Cursor) string {
	return EncodeMultiFieldToken(c.Date.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID)
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}
	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (date parse): %v", apperrors.ErrValidation, err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (created_at parse): %v", apperrors.ErrValidation, err)
	}
	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit], using DefaultLimit for 0.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// Page slices items that are already in listing order. It starts right after the row whose
// cursor equals nextToken and returns the token of the last row when more rows follow.
func Page[T any](items []T, limit int, nextToken *string, cursorOf func(T) Cursor) ([]T, *string, error) {
	limit = NormalizeLimit(limit)
	start := 0
	if nextToken != nil && *nextToken != "" {
		after, err := DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		start = -1
		for i, item := range items {
			c := cursorOf(item)
			if c.ID == after.ID && c.Date.Equal(after.Date) && c.CreatedAt.Equal(after.CreatedAt) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, nil, fmt.Errorf("%w: pagination token does not match any row", apperrors.ErrValidation)
		}
	}

	end := start + limit
	if end >= len(items) {
		return items[start:], nil, nil
	}
	token := EncodeCursor(cursorOf(items[end-1]))
	return items[start:end], &token, nil
}
