package routers

import (
	report_handlers "github.com/dogaculudag/repro-dashboard-sub001/internal/handlers/report"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/middleware"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	report_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func ReportRouter(api fiber.Router, service report_case.ReportServiceContract, validate *validator.Validate, i18n i18n.Service) {
	r := api.Group("/reports")
	h := report_handlers.NewReportHandler(service, validate, i18n)

	// Arbeiterberichte prüft der Service selbst (eigene Zeiten sind immer erlaubt)
	r.Get("/workers/:user_id", h.WorkerSummary)
	r.Get("/departments/:department_id", middleware.RequirePermission(permission.ReportViewDepartment), h.DepartmentTotal)
	r.Get("/files/:file_id", middleware.RequirePermission(permission.ReportViewFile), h.FileBreakdown)
}
