package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware ruft Accept-Language von Header ab und speichert den Wert bei c.Locals
func AcceptLanguageMiddleware(fallback string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("Accept-Language", fallback)
		lang := strings.Split(raw, ",")[0] // z. B. "tr-TR,tr;q=0.9,en;q=0.8"
		lang = strings.TrimSpace(strings.Split(lang, ";")[0])
		lang = strings.ToLower(strings.Split(lang, "-")[0])
		if lang == "" || lang == "*" {
			lang = fallback
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}
