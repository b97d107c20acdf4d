package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"briefnote/pkg/logger"
)

// NewLoggerMiddleware создает промежуточное ПО, которое присваивает запросу
// request_id и логирует начало и завершение обработки.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get("X-Request-Id")
		userCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		ctx.Locals(UserContextKey, userCtx)

		start := time.Now()
		path := ctx.Path()
		method := ctx.Method()

		log := logger.Log(userCtx).With(
			zap.String("path", path),
			zap.String("method", method),
			zap.String("ip", ctx.IP()),
		)

		log.Info(userCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)
		status := ctx.Response().StatusCode()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		if err != nil {
			log.Error(userCtx, "Request failed", append(logFields, zap.Error(err))...)
			return err
		}

		log.Info(userCtx, "Request completed", logFields...)
		return nil
	}
}
