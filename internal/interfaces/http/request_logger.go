package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

// RequestLogger registra una línea estructurada por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Str("subject", GetSubject(c)).
			Msg("request")
		return err
	}
}
