package middleware

import (
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	"github.com/gofiber/fiber/v2"
)

// RequirePermission prüft, ob die Rolle des Actors die Aktion erlaubt. Läuft nach AuthMiddleware.
func RequirePermission(action permission.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals("actor").(entity.Actor)
		if !ok {
			// Ohne Actor 401, bei fehlender Berechtigung 403.
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
		}

		if permission.Has(actor.Role, action) {
			return c.Next()
		}
		return app_errors.NewForbidden("forbidden")
	}
}
