package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 2, 3, 4, 5, 6, 789_123_456, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.Equal(t, ts.Truncate(time.Microsecond), gotTime)
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	cases := map[string]string{
		"empty":           "",
		"not base64":      "%%%",
		"legacy format":   enc("1700000000000000-" + uuid.NewString()),
		"unknown version": enc("v2:1700000000000000-" + uuid.NewString()),
		"no separator":    enc("v1:1700000000000000"),
		"bad timestamp":   enc("v1:abc-" + uuid.NewString()),
		"bad uuid":        enc("v1:1700000000000000-not-a-uuid"),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
