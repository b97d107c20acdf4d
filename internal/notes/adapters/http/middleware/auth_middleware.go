package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	servicesPorts "briefnote/internal/notes/ports/services"
	"briefnote/pkg/logger"
)

// UserContextKey - ключ Locals с контекстом запроса,
// обогащенным request_id и идентичностью пользователя.
const UserContextKey = "userContext"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// requestContext возвращает контекст запроса из Locals или базовый контекст.
func requestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// NewAuthMiddleware создает промежуточное ПО, которое проверяет Bearer-токен
// и помещает идентичность пользователя в контекст запроса.
func NewAuthMiddleware(tokenService servicesPorts.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		userCtx := requestContext(ctx)
		log := logger.Log(userCtx).With(zap.String("middleware", "auth"))
		log.Debug(userCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(userCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			log.Debug(userCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		identity, err := tokenService.ValidateAccessToken(userCtx, token)
		if err != nil {
			log.Debug(userCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(UserContextKey, NewIdentityContext(userCtx, identity))

		return ctx.Next()
	}
}
