package file_handlers

import (
	file_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/file-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/handlers"
	internal_i18n "github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	file_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/file-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	validator *validator.Validate
	service   file_case.FileServiceContract
	i18n      internal_i18n.Service
}

func NewFileHandler(service file_case.FileServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *FileHandler {
	return &FileHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *FileHandler) AssignFile(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	fileID, err := handlers.GetParamFileID(c, h.validator)
	if err != nil {
		return err
	}

	var req file_dto.AssignFileRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.AssignFile(c.UserContext(), actor, fileID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_assign_file", resp)
}

func (h *FileHandler) TransferToRepro(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	fileID, err := handlers.GetParamFileID(c, h.validator)
	if err != nil {
		return err
	}

	var req file_dto.TransferFileRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.TransferToRepro(c.UserContext(), actor, fileID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_transfer_file", resp)
}

func (h *FileHandler) SendToProduction(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	fileID, err := handlers.GetParamFileID(c, h.validator)
	if err != nil {
		return err
	}

	var req file_dto.SendToProductionRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.SendToProduction(c.UserContext(), actor, fileID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_send_to_production", resp)
}

func (h *FileHandler) ListPool(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var q file_dto.PoolQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.ListPoolFiles(c.UserContext(), actor, q.UserID)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_pool", resp)
}

func (h *FileHandler) ListQueue(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ListPreReproQueue(c.UserContext(), actor)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_queue", resp)
}

func (h *FileHandler) ListEvents(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	fileID, err := handlers.GetParamFileID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.ListFileEvents(c.UserContext(), actor, fileID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_events", resp)
}
