package time_entry_handlers

import (
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	time_entry_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/time-entry-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/handlers"
	internal_i18n "github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	time_entry_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/time-entry-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TimeEntryHandler struct {
	validator *validator.Validate
	service   time_entry_case.TimeEntryServiceContract
	i18n      internal_i18n.Service
}

func NewTimeEntryHandler(service time_entry_case.TimeEntryServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *TimeEntryHandler {
	return &TimeEntryHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *TimeEntryHandler) Start(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req time_entry_dto.StartTimeEntryRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.Start(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_start_entry", resp)
}

// Stop ist idempotent: ohne laufenden Eintrag 200 mit data = null.
func (h *TimeEntryHandler) Stop(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req time_entry_dto.StopTimeEntryRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.Stop(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	key := "response.success_stop_entry"
	if resp == nil {
		key = "response.no_running_entry"
	}
	return handlers.Respond(c, h.i18n, fiber.StatusOK, key, resp)
}

func (h *TimeEntryHandler) GetActive(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetActive(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "no-store")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_active_entry", resp)
}

func (h *TimeEntryHandler) GetSummary(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var q report_dto.WindowQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.GetSummary(c.UserContext(), actor.UserID, q)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_summary", resp)
}
