package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"health-screen/internal/logger"
	"health-screen/internal/metrics"
)

// RequestIDKey is the locals key used by the requestid middleware.
const RequestIDKey = "requestid"

// RequestLogger logs every request and records its latency in m. m may be
// nil.
func RequestLogger(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Run the error handler now so the logged status is the one sent.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		m.ObserveRequest(c.Method(), route, status, elapsed)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
			zap.String("ip", c.IP()),
			zap.String("request_id", requestID(c)),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Get().Error("HTTP request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Get().Warn("HTTP request", fields...)
		default:
			logger.Get().Info("HTTP request", fields...)
		}
		return nil
	}
}
