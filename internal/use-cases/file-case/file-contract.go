package file_case

import (
	"context"

	file_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/file-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type FileServiceContract interface {
	AssignFile(ctx context.Context, actor entity.Actor, fileID string, req *file_dto.AssignFileRequest) (*file_dto.FileAssignmentResponse, *app_errors.AppError)
	TransferToRepro(ctx context.Context, actor entity.Actor, fileID string, req *file_dto.TransferFileRequest) (*file_dto.FileAssignmentResponse, *app_errors.AppError)
	SendToProduction(ctx context.Context, actor entity.Actor, fileID string, req *file_dto.SendToProductionRequest) (*file_dto.SendToProductionResponse, *app_errors.AppError)
	ListPoolFiles(ctx context.Context, actor entity.Actor, userID string) ([]*file_dto.FileItem, *app_errors.AppError)
	ListPreReproQueue(ctx context.Context, actor entity.Actor) ([]*file_dto.FileItem, *app_errors.AppError)
	ListFileEvents(ctx context.Context, actor entity.Actor, fileID string) ([]*file_dto.FileEventItem, *app_errors.AppError)
	AuthorizeTracking(ctx context.Context, actor entity.Actor, fileID string) *app_errors.AppError
}
