package work_session_case

import (
	"context"

	work_session_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/work-session-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type WorkSessionServiceContract interface {
	StartWork(ctx context.Context, actor entity.Actor, req *work_session_dto.StartWorkRequest) (*work_session_dto.WorkSessionResponse, *app_errors.AppError)
	ChangeFile(ctx context.Context, actor entity.Actor, req *work_session_dto.ChangeFileRequest) (*work_session_dto.ChangeFileResponse, *app_errors.AppError)
	StopWork(ctx context.Context, actor entity.Actor) (*work_session_dto.StopWorkResponse, *app_errors.AppError)
	GetActiveSession(ctx context.Context, userID string) (*work_session_dto.WorkSessionResponse, *app_errors.AppError)
	GetAllActiveSessions(ctx context.Context, actor entity.Actor) ([]*work_session_dto.ActiveSessionItem, *app_errors.AppError)
}
