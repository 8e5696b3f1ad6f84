package jwt_test

import (
	"testing"
	"time"

	"badge-promotion-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", "idp.example")
	id := uuid.New()

	token, err := svc.GenerateToken(id, true, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", "idp.example")

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), false, -time.Minute)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", "idp.example").GenerateToken(uuid.New(), false, time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := jwt.NewService("secret", "someone-else").GenerateToken(uuid.New(), false, time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.Nil, false, time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
