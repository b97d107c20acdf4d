// Package services provides adapter implementations of the service ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"briefnote/internal/notes/domain/entities"
	servicesPorts "briefnote/internal/notes/ports/services"
)

// Ошибки проверки токенов.
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnexpectedMethod = errors.New("unexpected token signing method")
	ErrMissingSubject   = errors.New("token subject is missing")
)

// identityClaims описывает полезную нагрузку токена доступа,
// выданного внешним провайдером идентификации.
type identityClaims struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService проверяет токены доступа, подписанные HMAC-SHA256.
type JWTService struct {
	secretKey []byte
}

// NewJWT создает новый сервис проверки токенов.
func NewJWT(secretKey string) *JWTService {
	return &JWTService{secretKey: []byte(secretKey)}
}

var _ servicesPorts.TokenService = (*JWTService)(nil)

// ValidateAccessToken проверяет токен и возвращает идентичность пользователя.
func (s *JWTService) ValidateAccessToken(_ context.Context, tokenString string) (*entities.Identity, error) {
	claims := &identityClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedMethod, t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return &entities.Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, nil
}

// GenerateAccessToken выпускает токен доступа для указанной идентичности.
// Используется в тестах и локальной разработке; в эксплуатации токены
// выпускает внешний провайдер идентификации.
func (s *JWTService) GenerateAccessToken(identity *entities.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &identityClaims{
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
