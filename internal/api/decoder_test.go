package api

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/benx421/card-authorizer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDecoder(t *testing.T, input string) *Decoder {
	t.Helper()

	dec, err := NewDecoder(strings.NewReader(input), 1024*1024)
	require.NoError(t, err)
	return dec
}

func TestDecoder_Next(t *testing.T) {
	input := `{"account": {"active-card": true, "available-limit": 100}}

            {"transaction": {"merchant": "Burger King", "amount": 20, "time": "2019-02-13T10:00:00.000Z"}}
`
	dec := newTestDecoder(t, input)

	op, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, models.OperationKindAccount, op.Kind)
	assert.Equal(t, &models.AccountInput{AvailableLimit: 100, ActiveCard: true}, op.Account)
	assert.Nil(t, op.Transaction)
	assert.Equal(t, 1, op.Line)

	op, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, models.OperationKindTransaction, op.Kind)
	require.NotNil(t, op.Transaction)
	assert.Equal(t, "Burger King", op.Transaction.Merchant)
	assert.Equal(t, int64(20), op.Transaction.Amount)
	assert.True(t, time.Date(2019, 2, 13, 10, 0, 0, 0, time.UTC).Equal(op.Transaction.Time))
	assert.Equal(t, 3, op.Line, "blank lines still count toward line numbers")
	assert.True(t, strings.HasPrefix(op.Raw, `{"transaction"`), "raw input is trimmed")

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoder_TimeZones(t *testing.T) {
	dec := newTestDecoder(t, `{"transaction": {"merchant": "A", "amount": 1, "time": "2019-02-13T12:00:05.250+02:00"}}`)

	op, err := dec.Next()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 2, 13, 10, 0, 5, 250_000_000, time.UTC), op.Transaction.Time)
}

func TestDecoder_InvalidOperations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown operation", input: `{"invalid_op": {}}`},
		{name: "malformed json", input: `{"account": {"active-card": true`},
		{name: "both operations on one line", input: `{"account": {"active-card": true, "available-limit": 1}, "transaction": {"merchant": "A", "amount": 1, "time": "2019-02-13T10:00:00Z"}}`},
		{name: "negative limit", input: `{"account": {"active-card": true, "available-limit": -1}}`},
		{name: "fractional limit", input: `{"account": {"active-card": true, "available-limit": 10.5}}`},
		{name: "missing active-card", input: `{"account": {"available-limit": 100}}`},
		{name: "negative amount", input: `{"transaction": {"merchant": "A", "amount": -5, "time": "2019-02-13T10:00:00Z"}}`},
		{name: "empty merchant", input: `{"transaction": {"merchant": "", "amount": 5, "time": "2019-02-13T10:00:00Z"}}`},
		{name: "missing time", input: `{"transaction": {"merchant": "A", "amount": 5}}`},
		{name: "unparsable time", input: `{"transaction": {"merchant": "A", "amount": 5, "time": "yesterday"}}`},
		{name: "array instead of object", input: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := newTestDecoder(t, "\n"+tt.input+"\n")

			_, err := dec.Next()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidOperation)

			var decodeErr *DecodeError
			if assert.ErrorAs(t, err, &decodeErr) {
				assert.Equal(t, 2, decodeErr.Line)
				assert.Equal(t, tt.input, decodeErr.Input)
				assert.Contains(t, decodeErr.Error(), "line 2: invalid operation")
			}
		})
	}
}

func TestDecoder_LineTooLong(t *testing.T) {
	long := `{"transaction": {"merchant": "` + strings.Repeat("x", 4096) + `", "amount": 1, "time": "2019-02-13T10:00:00Z"}}`
	dec, err := NewDecoder(strings.NewReader(long), 1024)
	require.NoError(t, err)

	_, err = dec.Next()

	require.Error(t, err)
	assert.False(t, errors.Is(err, io.EOF))
	assert.False(t, errors.Is(err, ErrInvalidOperation), "read failures are not operation errors")
}

func TestDecoder_EmptyInput(t *testing.T) {
	dec := newTestDecoder(t, "  \n\n")

	_, err := dec.Next()

	assert.ErrorIs(t, err, io.EOF)
}
