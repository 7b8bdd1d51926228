package pagination

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	c := Cursor{
		Date:      time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "0b6f2e4c-1c55-4bd7-a4d3-7b1b31e0a8a9",
	}
	token := EncodeCursor(c)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)

	// zero times survive as well
	zero, err := DecodeCursor(EncodeCursor(Cursor{ID: "x"}))
	require.NoError(t, err)
	assert.True(t, zero.Date.IsZero())
}

func TestDecodeCursorError(t *testing.T) {
	_, err := DecodeCursor("this is not base64!")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeCursor(EncodeMultiFieldToken("only-one-field"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeCursor(EncodeMultiFieldToken("notadate", time.Now().Format(timeFormat), "id"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "date parse")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"field1", "field2", "field3"}
	parts, err := DecodeMultiFieldToken(EncodeMultiFieldToken(fields...))
	require.NoError(t, err)
	assert.Equal(t, fields, parts)
}

type row struct {
	id   string
	date time.Time
}

func rowCursor(r row) Cursor { return Cursor{Date: r.date, CreatedAt: r.date, ID: r.id} }

func TestPage(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]row, 5)
	for i := range rows {
		rows[i] = row{id: fmt.Sprintf("r%d", i), date: base.AddDate(0, 0, -i)}
	}

	first, next, err := Page(rows, 2, nil, rowCursor)
	require.NoError(t, err)
	assert.Equal(t, rows[0:2], first)
	require.NotNil(t, next)

	second, next, err := Page(rows, 2, next, rowCursor)
	require.NoError(t, err)
	assert.Equal(t, rows[2:4], second)
	require.NotNil(t, next)

	last, next, err := Page(rows, 2, next, rowCursor)
	require.NoError(t, err)
	assert.Equal(t, rows[4:], last)
	assert.Nil(t, next)

	stale := EncodeCursor(Cursor{ID: "gone"})
	_, _, err = Page(rows, 2, &stale, rowCursor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}
