package report_handlers

import (
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/handlers"
	internal_i18n "github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	report_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	validator *validator.Validate
	service   report_case.ReportServiceContract
	i18n      internal_i18n.Service
}

func NewReportHandler(service report_case.ReportServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *ReportHandler {
	return &ReportHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *ReportHandler) WorkerSummary(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	userID, err := handlers.GetParamUserID(c, h.validator)
	if err != nil {
		return err
	}

	var q report_dto.WindowQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.GetWorkerTimeSummary(c.UserContext(), actor, userID, q)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=30")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_worker_report", resp)
}

func (h *ReportHandler) DepartmentTotal(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	departmentID, err := handlers.GetParamDepartmentID(c, h.validator)
	if err != nil {
		return err
	}

	var q report_dto.WindowQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.GetDepartmentTotalTime(c.UserContext(), actor, departmentID, q)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=30")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_department_report", resp)
}

func (h *ReportHandler) FileBreakdown(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	fileID, err := handlers.GetParamFileID(c, h.validator)
	if err != nil {
		return err
	}

	var q report_dto.FileBreakdownQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.GetFileWorkerBreakdown(c.UserContext(), actor, fileID, q)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=30")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_file_report", resp)
}
