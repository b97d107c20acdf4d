package services

import (
	"context"

	"briefnote/internal/notes/domain/entities"
)

// TokenService определяет интерфейс для проверки токенов доступа.
type TokenService interface {
	// ValidateAccessToken проверяет токен и возвращает идентичность пользователя.
	ValidateAccessToken(ctx context.Context, token string) (*entities.Identity, error)
}
