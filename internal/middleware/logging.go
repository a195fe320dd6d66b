package middleware

import (
	"time"

	"github.com/arnold/lifehub-api/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.L.Infow("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
		)
		return err
	}
}
