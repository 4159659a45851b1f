package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	original := Token{
		LastID:        "inv-42",
		LastCreatedAt: time.Date(2026, 1, 15, 9, 30, 0, 123456789, time.UTC),
	}
	decoded, err := Decode(original.Encode())
	require.NoError(t, err)
	assert.Equal(t, original.LastID, decoded.LastID)
	assert.True(t, original.LastCreatedAt.Equal(decoded.LastCreatedAt))
}

func TestDecodeEmptyTokenIsZero(t *testing.T) {
	token, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, token.LastID)
	assert.True(t, token.LastCreatedAt.IsZero())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("not base64!!!")
	assert.Error(t, err)

	_, err = Decode("bm8tc2VwYXJhdG9y") // valid base64, no separator
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50, 200))
	assert.Equal(t, 50, ClampLimit(-3, 50, 200))
	assert.Equal(t, 25, ClampLimit(25, 50, 200))
	assert.Equal(t, 200, ClampLimit(1000, 50, 200))
}
