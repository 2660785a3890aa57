package time_entry_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/cache"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	time_entry_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/time-entry-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	time_entry_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/time-entry-repo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type TimeEntryService struct {
	repo      time_entry_repo.TimeEntryRepoContract
	ledger    LedgerContract
	txManager tx.TxManager
	gate      TrackingGate
	cache     cache.Cache
	loc       *time.Location
	maxDays   int
	now       func() time.Time
}

func NewTimeEntryService(db *pgxpool.Pool, sessionCache cache.Cache, gate TrackingGate, cfg *config.AppConfig) TimeEntryServiceContract {
	repo := time_entry_repo.NewTimeEntryRepo(db)
	return &TimeEntryService{
		repo:      repo,
		ledger:    NewLedger(repo),
		txManager: tx.NewPgxTxManager(db),
		gate:      gate,
		cache:     sessionCache,
		loc:       cfg.Location(),
		maxDays:   cfg.TRACKING.MaxReportDays,
		now:       time.Now,
	}
}

func (s *TimeEntryService) Start(ctx context.Context, actor entity.Actor, req *time_entry_dto.StartTimeEntryRequest) (*time_entry_dto.TimeEntryResponse, *app_errors.AppError) {
	if err := s.gate.AuthorizeTracking(ctx, actor, req.FileID); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	entry, err := s.ledger.OpenInTx(ctx, t, actor.UserID, req.FileID, req.Note, s.now())
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("user_id", actor.UserID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}

	return ToTimeEntryResponse(entry, s.now()), nil
}

// Stop schließt den offenen Eintrag. Ist nichts aktiv, ist das Ergebnis (nil, nil).
func (s *TimeEntryService) Stop(ctx context.Context, actor entity.Actor, req *time_entry_dto.StopTimeEntryRequest) (*time_entry_dto.TimeEntryResponse, *app_errors.AppError) {
	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	closed, err := s.ledger.CloseInTx(ctx, t, actor.UserID, req.FileID, s.now())
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("user_id", actor.UserID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}

	// Eine Sitzung, die auf diesen Eintrag zeigt, ist jetzt verwaist.
	if delErr := s.cache.Invalidate(ctx, cache.WorkSessionKey(actor.UserID)); delErr != nil {
		log.Warn().Err(delErr).Str("user_id", actor.UserID).Msg("Fehler beim Löschen des Sitzungs-Caches")
	}

	return ToTimeEntryResponse(closed, s.now()), nil
}

func (s *TimeEntryService) GetActive(ctx context.Context, userID string) (*time_entry_dto.TimeEntryResponse, *app_errors.AppError) {
	entry, err := s.repo.GetOpenEntry(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return ToTimeEntryResponse(entry, s.now()), nil
}

func (s *TimeEntryService) GetSummary(ctx context.Context, userID string, q report_dto.WindowQuery) (*report_dto.TimeSummary, *app_errors.AppError) {
	now := s.now()
	w, err := ResolveWindow(q.Period, q.From, q.To, now, s.loc, s.maxDays)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListOverlapping(ctx, entity.TimeEntryFilter{
		UserID:      &userID,
		From:        w.From,
		To:          w.To,
		IncludeOpen: q.IncludeOpen,
	})
	if err != nil {
		return nil, err
	}

	summary := Summarize(entries, w, now, s.loc)
	return &summary, nil
}

// ToTimeEntryResponse rechnet die Dauer offener Einträge bis now.
func ToTimeEntryResponse(e *entity.TimeEntryEntity, now time.Time) *time_entry_dto.TimeEntryResponse {
	end := now
	if e.EndedAt != nil {
		end = *e.EndedAt
	}
	secs := end.Unix() - e.StartedAt.Unix()
	if secs < 0 {
		secs = 0
	}

	return &time_entry_dto.TimeEntryResponse{
		EntryID:         e.ID,
		UserID:          e.UserID,
		FileID:          e.FileID,
		StartedAt:       e.StartedAt,
		EndedAt:         e.EndedAt,
		DurationSeconds: secs,
		Note:            e.Note,
	}
}
