package routers

import (
	"time"

	work_session_handlers "github.com/dogaculudag/repro-dashboard-sub001/internal/handlers/work-session"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/middleware"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	work_session_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/work-session-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func WorkSessionRouter(api fiber.Router, service work_session_case.WorkSessionServiceContract, validate *validator.Validate, i18n i18n.Service, store fiber.Storage) {
	r := api.Group("/work-sessions")
	h := work_session_handlers.NewWorkSessionHandler(service, validate, i18n)

	r.Post("/start", trackingLimiter("work_start", 30, time.Minute, store), h.StartWork)
	r.Post("/change-file", trackingLimiter("work_change", 60, time.Minute, store), h.ChangeFile)
	r.Post("/stop", h.StopWork)
	r.Get("/active", h.GetActiveSession)
	r.Get("/", middleware.RequirePermission(permission.SessionViewAll), h.ListActiveSessions)
}
