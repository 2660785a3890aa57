package middleware

import (
	"errors"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	internal_i18n "github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware behandelt Fehler, die während der Anfrageverarbeitung auftreten.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = "en"
		}

		var appErr *app_errors.AppError
		if !errors.As(err, &appErr) {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				// z. B. 404 für unbekannte Routen oder 405
				key := "invalid_request"
				if fiberErr.Code == fiber.StatusTooManyRequests {
					key = "too_many_requests"
				}
				appErr = app_errors.NewAppError(fiberErr.Code, fiberErrType(fiberErr.Code), key, nil)
			} else {
				appErr = app_errors.NewAppError(
					fiber.StatusInternalServerError,
					app_errors.ErrInternal,
					"internal_error",
					err,
				)
			}
		}

		message := i18nSvc.T(lang, appErr.MessageKey, nil)

		reqID, _ := c.Locals("request_id").(string)

		respErr := fiber.Map{
			"code":       appErr.Code,
			"type":       appErr.Type,
			"message":    message,
			"request_id": reqID,
		}

		if len(appErr.Details) > 0 {
			var details []fiber.Map

			for _, d := range appErr.Details {
				details = append(details, fiber.Map{
					"field":  d.Field,
					"reason": d.Reason,
					"message": i18nSvc.T(
						lang,
						d.MessageKey,
						d.Params,
					),
				})
			}

			respErr["details"] = details
		}

		if appErr.Err != nil {
			log.Error().Err(appErr.Err).Str("request_id", reqID).Msg("application error")
		}

		return c.Status(appErr.Code).JSON(fiber.Map{
			"status": "error",
			"error":  respErr,
		})
	}
}

func fiberErrType(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return app_errors.ErrNotFound
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case fiber.StatusRequestEntityTooLarge, fiber.StatusBadRequest:
		return app_errors.ErrInvalidBody
	}
	if code >= 500 {
		return app_errors.ErrInternal
	}
	return app_errors.ErrValidation
}
