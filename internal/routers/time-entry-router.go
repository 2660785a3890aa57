package routers

import (
	"time"

	time_entry_handlers "github.com/dogaculudag/repro-dashboard-sub001/internal/handlers/time-entry"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	time_entry_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/time-entry-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func TimeEntryRouter(api fiber.Router, service time_entry_case.TimeEntryServiceContract, validate *validator.Validate, i18n i18n.Service, store fiber.Storage) {
	r := api.Group("/time-entries")
	h := time_entry_handlers.NewTimeEntryHandler(service, validate, i18n)

	r.Post("/start", trackingLimiter("time_start", 30, time.Minute, store), h.Start)
	r.Post("/stop", h.Stop)
	r.Get("/active", h.GetActive)
	r.Get("/summary", h.GetSummary)
}
