package report_dto

import (
	"slices"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/go-playground/validator/v10"
)

// WindowQuery ist entweder ein Kurzname (period) oder ein explizites Fenster from/to in RFC3339.
type WindowQuery struct {
	Period      string `query:"period" validate:"required_without=From,omitempty,period"`
	From        string `query:"from" validate:"required_without=Period,omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To          string `query:"to" validate:"required_with=From,omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IncludeOpen bool   `query:"include_open"`
}

// FileBreakdownQuery erlaubt ein optionales Fenster; ohne Angabe zählt die gesamte Historie.
type FileBreakdownQuery struct {
	Period      string `query:"period" validate:"omitempty,period"`
	From        string `query:"from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To          string `query:"to" validate:"required_with=From,omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IncludeOpen bool   `query:"include_open"`
}

type ParamUserID struct {
	ID string `params:"user_id" validate:"required,uuid"`
}

type ParamDepartmentID struct {
	ID string `params:"department_id" validate:"required,uuid"`
}

func IsValidPeriod(fl validator.FieldLevel) bool {
	return slices.Contains(utils.Periods, fl.Field().String())
}
