package work_session_handlers

import (
	work_session_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/work-session-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/handlers"
	internal_i18n "github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	work_session_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/work-session-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type WorkSessionHandler struct {
	validator *validator.Validate
	service   work_session_case.WorkSessionServiceContract
	i18n      internal_i18n.Service
}

func NewWorkSessionHandler(service work_session_case.WorkSessionServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *WorkSessionHandler {
	return &WorkSessionHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *WorkSessionHandler) StartWork(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req work_session_dto.StartWorkRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.StartWork(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_start_work", resp)
}

func (h *WorkSessionHandler) ChangeFile(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req work_session_dto.ChangeFileRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.ChangeFile(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_change_file", resp)
}

func (h *WorkSessionHandler) StopWork(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.StopWork(c.UserContext(), actor)
	if err != nil {
		return err
	}

	key := "response.success_stop_work"
	if resp == nil {
		key = "response.no_active_session"
	}
	return handlers.Respond(c, h.i18n, fiber.StatusOK, key, resp)
}

func (h *WorkSessionHandler) GetActiveSession(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetActiveSession(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "no-store")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_session", resp)
}

func (h *WorkSessionHandler) ListActiveSessions(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetAllActiveSessions(c.UserContext(), actor)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_sessions", resp)
}
