package routers

import (
	file_handlers "github.com/dogaculudag/repro-dashboard-sub001/internal/handlers/file"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/middleware"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	file_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/file-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func FileRouter(api fiber.Router, service file_case.FileServiceContract, validate *validator.Validate, i18n i18n.Service) {
	r := api.Group("/files")
	h := file_handlers.NewFileHandler(service, validate, i18n)

	// statische Pfade vor :file_id
	r.Get("/pool", h.ListPool)
	r.Get("/queue", h.ListQueue)
	r.Post("/:file_id/assign", h.AssignFile)
	r.Post("/:file_id/transfer", h.TransferToRepro)
	r.Post("/:file_id/send-to-production", h.SendToProduction)
	r.Get("/:file_id/events", middleware.RequirePermission(permission.AuditView), h.ListEvents)
}
