package handlers

import (
	"github.com/dogaculudag/repro-dashboard-sub001/internal/dtos"
	file_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/file-dto"
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	internal_i18n "github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

// NewValidator registriert die eigenen Tags einmal für alle Handler.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("period", report_dto.IsValidPeriod)
	return validate
}

func GetActor(c *fiber.Ctx) (entity.Actor, *app_errors.AppError) {
	actor, ok := c.Locals("actor").(entity.Actor)
	if !ok || actor.UserID == "" {
		return entity.Actor{}, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return actor, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	return lang
}

// Respond schreibt eine erfolgreiche Antwort mit übersetzter Nachricht.
func Respond[T any](c *fiber.Ctx, i18n internal_i18n.Service, status int, messageKey string, data T) error {
	webResp := CreateResponse(i18n.T(GetLang(c), messageKey, nil), data, GetRequestID(c))
	if err := c.Status(status).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// ParseBody liest und validiert den JSON-Body. Ein leerer Body gilt als leeres Objekt.
func ParseBody(c *fiber.Ctx, v *validator.Validate, req any) *app_errors.AppError {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
		}
	}

	if err := v.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func ParseQuery(c *fiber.Ctx, v *validator.Validate, q any) *app_errors.AppError {
	if err := c.QueryParser(q); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := v.Struct(q); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func GetParamFileID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param file_dto.ParamFileID
	if err := parseParams(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamUserID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param report_dto.ParamUserID
	if err := parseParams(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamDepartmentID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param report_dto.ParamDepartmentID
	if err := parseParams(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func parseParams(c *fiber.Ctx, v *validator.Validate, param any) *app_errors.AppError {
	if err := c.ParamsParser(param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}
