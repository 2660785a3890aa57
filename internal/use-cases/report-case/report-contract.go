package report_case

import (
	"context"

	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type ReportServiceContract interface {
	GetWorkerTimeSummary(ctx context.Context, actor entity.Actor, userID string, q report_dto.WindowQuery) (*report_dto.WorkerReport, *app_errors.AppError)
	GetDepartmentTotalTime(ctx context.Context, actor entity.Actor, departmentID string, q report_dto.WindowQuery) (*report_dto.DepartmentReport, *app_errors.AppError)
	GetFileWorkerBreakdown(ctx context.Context, actor entity.Actor, fileID string, q report_dto.FileBreakdownQuery) (*report_dto.FileReport, *app_errors.AppError)
}
