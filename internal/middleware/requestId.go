package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestIDAlphabet  = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	requestIDLength    = 16
	maxClientRequestID = 64
)

// RequestIDMiddleware übernimmt X-Request-ID vom Client oder erzeugt "RDT-<nanoid>".
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxClientRequestID {
			id, err := gonanoid.Generate(requestIDAlphabet, requestIDLength)
			if err != nil {
				return fmt.Errorf("Fehler beim Generieren der Anforderungs-ID: %w", err)
			}
			requestID = "RDT-" + id
		}

		c.Locals("request_id", requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		return c.Next()
	}
}
