package file_repo

import (
	"context"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type FileRepoContract interface {
	GetFileByID(ctx context.Context, fileID string) (*entity.FileEntity, *app_errors.AppError)
	GetFileForUpdate(ctx context.Context, t tx.Tx, fileID string) (*entity.FileEntity, *app_errors.AppError)
	UpdateAssignee(ctx context.Context, t tx.Tx, fileID, designerID string) (*entity.FileAssignment, *app_errors.AppError)
	TransferToRepro(ctx context.Context, t tx.Tx, fileID, designerID string) (*entity.FileAssignment, *app_errors.AppError)
	UpdateStatus(ctx context.Context, t tx.Tx, fileID string, status entity.FileStatus) *app_errors.AppError
	ListPoolFiles(ctx context.Context, designerID string) ([]entity.PoolFile, *app_errors.AppError)
	ListPreReproQueue(ctx context.Context) ([]entity.FileEntity, *app_errors.AppError)
	InsertFileEvent(ctx context.Context, t tx.Tx, event *entity.FileEventEntity) *app_errors.AppError
	ListFileEvents(ctx context.Context, fileID string) ([]entity.FileEventEntity, *app_errors.AppError)
}
