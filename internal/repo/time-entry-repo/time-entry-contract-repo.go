package time_entry_repo

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type TimeEntryRepoContract interface {
	GetOpenEntryForUpdate(ctx context.Context, t tx.Tx, userID string) (*entity.TimeEntryEntity, *app_errors.AppError)
	GetOpenEntry(ctx context.Context, userID string) (*entity.TimeEntryEntity, *app_errors.AppError)
	InsertEntry(ctx context.Context, t tx.Tx, entry *entity.TimeEntryEntity) *app_errors.AppError
	CloseEntry(ctx context.Context, t tx.Tx, entryID string, endedAt time.Time) (*entity.TimeEntryEntity, *app_errors.AppError)
	ListOverlapping(ctx context.Context, filter entity.TimeEntryFilter) ([]entity.ReportEntry, *app_errors.AppError)
	ListLongRunning(ctx context.Context, startedBefore time.Time) ([]entity.LongRunningEntry, *app_errors.AppError)
}
