package jwtservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefnote/internal/notes/adapters/services"
	"briefnote/internal/notes/domain/entities"
)

const testSecret = "test-secret-key"

func TestValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := services.NewJWT(testSecret)

	identity := &entities.Identity{
		UserID:      "user-123",
		Email:       "user@example.com",
		DisplayName: "Test User",
	}

	t.Run("Успешная проверка токена", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(identity, time.Hour)
		require.NoError(t, err)

		got, err := svc.ValidateAccessToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, identity.UserID, got.UserID)
		assert.Equal(t, identity.Email, got.Email)
		assert.Equal(t, identity.DisplayName, got.DisplayName)
	})

	t.Run("Просроченный токен отклоняется", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(identity, -time.Minute)
		require.NoError(t, err)

		got, err := svc.ValidateAccessToken(ctx, token)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Токен с чужой подписью отклоняется", func(t *testing.T) {
		otherSvc := services.NewJWT("another-secret")
		token, err := otherSvc.GenerateAccessToken(identity, time.Hour)
		require.NoError(t, err)

		got, err := svc.ValidateAccessToken(ctx, token)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Недопустимый алгоритм подписи отклоняется", func(t *testing.T) {
		// none-токен не проходит проверку метода подписи.
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: identity.UserID,
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		got, err := svc.ValidateAccessToken(ctx, token)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Токен без subject отклоняется", func(t *testing.T) {
		anonymous := &entities.Identity{Email: "ghost@example.com"}
		token, err := svc.GenerateAccessToken(anonymous, time.Hour)
		require.NoError(t, err)

		got, err := svc.ValidateAccessToken(ctx, token)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrMissingSubject)
	})

	t.Run("Мусорная строка отклоняется", func(t *testing.T) {
		got, err := svc.ValidateAccessToken(ctx, "not-a-jwt")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
