// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"briefnote/internal/notes/domain/entities"
)

// identityKeyType - ключ контекста для хранения идентичности пользователя.
type identityKeyType struct{}

var identityKey = identityKeyType{}

// NewIdentityContext создает новый контекст с идентичностью пользователя.
func NewIdentityContext(ctx context.Context, identity *entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext извлекает идентичность пользователя из контекста.
func IdentityFromContext(ctx context.Context) (*entities.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*entities.Identity)
	return identity, ok
}
