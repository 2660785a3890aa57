package work_session_repo

import (
	"context"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type WorkSessionRepoContract interface {
	GetActiveForUpdate(ctx context.Context, t tx.Tx, userID string) (*entity.WorkSessionEntity, *app_errors.AppError)
	GetActive(ctx context.Context, userID string) (*entity.WorkSessionEntity, *app_errors.AppError)
	Upsert(ctx context.Context, t tx.Tx, session *entity.WorkSessionEntity) *app_errors.AppError
	Delete(ctx context.Context, t tx.Tx, userID string) *app_errors.AppError
	ListActive(ctx context.Context) ([]entity.ActiveSessionView, *app_errors.AppError)
}
