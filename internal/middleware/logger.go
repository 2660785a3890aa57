package middleware

import (
	"errors"
	"time"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware protokolliert eingehende Anfragen und deren Antworten.
// Der Request-Logger liegt im UserContext, damit Services mit zerolog.Ctx loggen können.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID, _ := c.Locals("request_id").(string)

		logger := log.With().Str("request_id", reqID).Logger()
		c.SetUserContext(logger.WithContext(c.UserContext()))

		err := c.Next()

		userID, _ := c.Locals("user_id").(string)
		logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", responseStatus(c, err)).
			Dur("duration", time.Since(start)).
			Str("user_id", userID).
			Msg("request")

		return err
	}
}

// responseStatus liefert den Status, den der ErrorHandler gleich schreiben wird.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var appErr *app_errors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
