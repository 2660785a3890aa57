package routers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const openEntryIndex = "time_entries_one_open_per_user"

// HealthRouter registriert Health- und Readiness-Endpoints ohne Authentifizierung.
//   - GET /healthz: JSON-Status, immer 200.
//   - GET /livez:   Text, immer 200.
//   - GET /readyz:  prüft Redis, Postgres und den Unique-Index für offene Einträge, sonst 503.
func HealthRouter(app fiber.Router, db *pgxpool.Pool, redis *redis.Client) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Health-OK",
			"message": "Service lebt.",
		})
	})
	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})
	app.Get("/readyz", func(c *fiber.Ctx) error {
		checks := fiber.Map{"redis": "ok", "postgres": "ok", "open_entry_index": "ok"}
		ready := true

		if err := redis.Ping(c.UserContext()).Err(); err != nil {
			checks["redis"], ready = err.Error(), false
		}
		if err := db.Ping(c.UserContext()); err != nil {
			checks["postgres"], ready = err.Error(), false
			checks["open_entry_index"] = "nicht geprüft"
		} else if ok, err := hasOpenEntryIndex(c.UserContext(), db); err != nil || !ok {
			// ohne den Index ist "ein offener Eintrag pro Benutzer" nicht garantiert
			checks["open_entry_index"], ready = "fehlt", false
		}

		if !ready {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "Fehlversuch",
				"checks": checks,
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "Bereit",
			"checks": checks,
		})
	})
}

func hasOpenEntryIndex(ctx context.Context, db *pgxpool.Pool) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = $1)`, openEntryIndex).Scan(&exists)
	return exists, err
}
