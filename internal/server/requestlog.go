package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func newRequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		entry := log.WithFields(log.Fields{
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start).String(),
			"method":  c.Method(),
			"path":    c.Path(),
		})
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entry.Warn("http request")
		} else {
			entry.Debug("http request")
		}

		return err
	}
}
