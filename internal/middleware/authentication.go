package middleware

import (
	"strings"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TokenVerifier prüft ein Bearer-Token des Identity-Providers.
type TokenVerifier interface {
	VerifyToken(token string) (*utils.IdentityClaims, error)
}

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Verhalten:
//   - Fehlender Header, falsches Format, ungültiges/abgelaufenes Token oder unbekannte Rolle ergeben 401.
//   - sub und department_id müssen UUIDs sein, sonst ebenfalls 401.
//   - Bei Erfolg liegen unter "actor" ein entity.Actor und unter "user_id" die Benutzer-ID.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized("auth.header_missing")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized("auth.header_format")
		}

		claims, err := verifier.VerifyToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Msg("Token-Verifizierung fehlgeschlagen")
			return unauthorized("auth.token_invalid")
		}

		if uuid.Validate(claims.UserID) != nil {
			return unauthorized("auth.subject_invalid")
		}
		if claims.DepartmentID != "" && uuid.Validate(claims.DepartmentID) != nil {
			return unauthorized("auth.subject_invalid")
		}

		role := entity.UserRole(claims.Role)
		if !role.IsValid() {
			return unauthorized("auth.role_unknown")
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("actor", entity.Actor{
			UserID:       claims.UserID,
			Role:         role,
			DepartmentID: claims.DepartmentID,
		})
		c.Locals("user_id", claims.UserID)

		return c.Next()
	}
}

func unauthorized(key string) *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, key, nil)
}
