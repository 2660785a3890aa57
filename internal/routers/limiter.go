package routers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// trackingLimiter begrenzt Start- und Wechselaufrufe pro Benutzer.
func trackingLimiter(name string, limit int, window time.Duration, store fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID := c.Locals("user_id")
			if userID == nil {
				return name + ":ip:" + c.IP() // fallback to ip
			}
			return fmt.Sprintf("%s:%v", name, userID)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "too_many_requests")
		},
		Storage: store,
	})
}
