package time_entry_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	time_entry_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/time-entry-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type TimeEntryServiceContract interface {
	Start(ctx context.Context, actor entity.Actor, req *time_entry_dto.StartTimeEntryRequest) (*time_entry_dto.TimeEntryResponse, *app_errors.AppError)
	Stop(ctx context.Context, actor entity.Actor, req *time_entry_dto.StopTimeEntryRequest) (*time_entry_dto.TimeEntryResponse, *app_errors.AppError)
	GetActive(ctx context.Context, userID string) (*time_entry_dto.TimeEntryResponse, *app_errors.AppError)
	GetSummary(ctx context.Context, userID string, q report_dto.WindowQuery) (*report_dto.TimeSummary, *app_errors.AppError)
}

// LedgerContract sind die transaktionalen Grundoperationen, die auch die Sitzungsverwaltung nutzt.
type LedgerContract interface {
	OpenInTx(ctx context.Context, t tx.Tx, userID, fileID string, note *string, at time.Time) (*entity.TimeEntryEntity, *app_errors.AppError)
	CloseInTx(ctx context.Context, t tx.Tx, userID string, fileID *string, at time.Time) (*entity.TimeEntryEntity, *app_errors.AppError)
}

// TrackingGate entscheidet, ob ein Benutzer Zeit auf eine Mappe buchen darf.
type TrackingGate interface {
	AuthorizeTracking(ctx context.Context, actor entity.Actor, fileID string) *app_errors.AppError
}
