package work_session_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/cache"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	work_session_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/work-session-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	time_entry_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/time-entry-repo"
	work_session_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/work-session-repo"
	time_entry_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/time-entry-case"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// WorkSessionService verwaltet den Zustand IDLE -> ACTIVE -> ACTIVE(andere Mappe) -> IDLE.
// Jeder Übergang ist genau eine Transaktion über Sitzung und Ledger.
type WorkSessionService struct {
	repo      work_session_repo.WorkSessionRepoContract
	ledger    time_entry_case.LedgerContract
	txManager tx.TxManager
	gate      time_entry_case.TrackingGate
	cache     cache.Cache
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewWorkSessionService(db *pgxpool.Pool, sessionCache cache.Cache, gate time_entry_case.TrackingGate, cfg *config.AppConfig) WorkSessionServiceContract {
	return &WorkSessionService{
		repo:      work_session_repo.NewWorkSessionRepo(db),
		ledger:    time_entry_case.NewLedger(time_entry_repo.NewTimeEntryRepo(db)),
		txManager: tx.NewPgxTxManager(db),
		gate:      gate,
		cache:     sessionCache,
		cacheTTL:  cfg.SessionCacheTTL(),
		now:       time.Now,
	}
}

// StartWork ist idempotent für dieselbe Mappe. Läuft bereits eine andere Mappe,
// muss ChangeFile verwendet werden.
func (s *WorkSessionService) StartWork(ctx context.Context, actor entity.Actor, req *work_session_dto.StartWorkRequest) (*work_session_dto.WorkSessionResponse, *app_errors.AppError) {
	if err := s.gate.AuthorizeTracking(ctx, actor, req.FileID); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	current, err := s.repo.GetActiveForUpdate(ctx, t, actor.UserID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if current.CurrentFileID == req.FileID {
			return toSessionResponse(current), nil
		}
		return nil, app_errors.NewConflict("conflict.session_active_on_other_file", nil)
	}

	now := s.now().UTC()
	entry, err := s.ledger.OpenInTx(ctx, t, actor.UserID, req.FileID, nil, now)
	if err != nil {
		return nil, err
	}

	session := &entity.WorkSessionEntity{
		UserID:         actor.UserID,
		CurrentFileID:  req.FileID,
		CurrentEntryID: entry.ID,
		StartedAt:      now,
		SwitchedAt:     now,
	}
	if err := s.repo.Upsert(ctx, t, session); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("user_id", actor.UserID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}
	s.invalidate(ctx, actor.UserID)

	return toSessionResponse(session), nil
}

// ChangeFile schließt den laufenden Eintrag und öffnet den neuen in derselben Transaktion.
func (s *WorkSessionService) ChangeFile(ctx context.Context, actor entity.Actor, req *work_session_dto.ChangeFileRequest) (*work_session_dto.ChangeFileResponse, *app_errors.AppError) {
	if err := s.gate.AuthorizeTracking(ctx, actor, req.FileID); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	current, err := s.repo.GetActiveForUpdate(ctx, t, actor.UserID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, app_errors.NewNotFound("not_found.no_active_session")
	}
	if current.CurrentFileID == req.FileID {
		return &work_session_dto.ChangeFileResponse{Session: *toSessionResponse(current)}, nil
	}

	now := s.now().UTC()
	closed, err := s.ledger.CloseInTx(ctx, t, actor.UserID, &current.CurrentFileID, now)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.OpenInTx(ctx, t, actor.UserID, req.FileID, nil, now)
	if err != nil {
		return nil, err
	}

	session := &entity.WorkSessionEntity{
		UserID:         actor.UserID,
		CurrentFileID:  req.FileID,
		CurrentEntryID: entry.ID,
		StartedAt:      current.StartedAt,
		SwitchedAt:     now,
	}
	if err := s.repo.Upsert(ctx, t, session); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("user_id", actor.UserID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}
	s.invalidate(ctx, actor.UserID)

	return &work_session_dto.ChangeFileResponse{
		Session:     *toSessionResponse(session),
		ClosedEntry: time_entry_case.ToTimeEntryResponse(closed, now),
	}, nil
}

// StopWork beendet Sitzung und offenen Eintrag. Ist nichts aktiv, ist das Ergebnis (nil, nil).
func (s *WorkSessionService) StopWork(ctx context.Context, actor entity.Actor) (*work_session_dto.StopWorkResponse, *app_errors.AppError) {
	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	current, err := s.repo.GetActiveForUpdate(ctx, t, actor.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	closed, err := s.ledger.CloseInTx(ctx, t, actor.UserID, nil, now)
	if err != nil && err.Type != app_errors.ErrNotFound {
		return nil, err
	}
	// Eine verwaiste Zeile liefert GetActiveForUpdate nicht; sie bleibt bis zum nächsten Upsert liegen.
	if current == nil && closed == nil {
		return nil, nil
	}

	if err := s.repo.Delete(ctx, t, actor.UserID); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("user_id", actor.UserID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}
	s.invalidate(ctx, actor.UserID)

	resp := &work_session_dto.StopWorkResponse{UserID: actor.UserID}
	if closed != nil {
		resp.ClosedEntry = time_entry_case.ToTimeEntryResponse(closed, now)
	}
	return resp, nil
}

func (s *WorkSessionService) GetActiveSession(ctx context.Context, userID string) (*work_session_dto.WorkSessionResponse, *app_errors.AppError) {
	// Redis dient nur als Cache, nicht als Source of Truth
	key := cache.WorkSessionKey(userID)
	var cached work_session_dto.WorkSessionResponse
	found, cacheErr := s.cache.Get(ctx, key, &cached)
	if cacheErr != nil {
		log.Warn().Err(cacheErr.Err).Str("key", key).Msg("Fehler beim Lesen des Redis-Caches")
	}
	if found {
		return &cached, nil
	}

	// Version vor dem DB-Lesen, sonst kann eine parallele Mutation überschrieben werden
	version, verErr := s.cache.Version(ctx, key)
	if verErr != nil {
		log.Warn().Err(verErr.Err).Str("key", key).Msg("Fehler beim Lesen der Cache-Version")
	}

	session, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	resp := toSessionResponse(session)
	if verErr != nil {
		return resp, nil
	}
	stored, setErr := s.cache.SetIfVersion(ctx, key, version, resp, s.cacheTTL)
	if setErr != nil {
		log.Warn().Err(setErr.Err).Str("key", key).Msg("Fehler beim Einstellen des Redis-Caches")
	} else if !stored {
		log.Debug().Str("key", key).Msg("Sitzung wurde inzwischen geändert, Cache bleibt leer")
	}
	return resp, nil
}

func (s *WorkSessionService) GetAllActiveSessions(ctx context.Context, actor entity.Actor) ([]*work_session_dto.ActiveSessionItem, *app_errors.AppError) {
	if !permission.Has(actor.Role, permission.SessionViewAll) {
		return nil, app_errors.NewForbidden("forbidden")
	}

	sessions, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := make([]*work_session_dto.ActiveSessionItem, 0, len(sessions))
	for _, v := range sessions {
		elapsed := max(now.Unix()-v.StartedAt.Unix(), 0)
		resp = append(resp, &work_session_dto.ActiveSessionItem{
			UserID:         v.UserID,
			UserName:       v.UserName,
			DepartmentID:   v.DepartmentID,
			CurrentFileID:  v.CurrentFileID,
			FileNo:         v.FileNo,
			StartedAt:      v.StartedAt,
			EntryStartedAt: v.EntryStartedAt,
			ElapsedSeconds: elapsed,
			Elapsed:        utils.FormatDuration(elapsed),
		})
	}
	return resp, nil
}

func (s *WorkSessionService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, cache.WorkSessionKey(userID)); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Fehler beim Löschen des Sitzungs-Caches")
	}
}

func toSessionResponse(s *entity.WorkSessionEntity) *work_session_dto.WorkSessionResponse {
	return &work_session_dto.WorkSessionResponse{
		UserID:         s.UserID,
		CurrentFileID:  s.CurrentFileID,
		CurrentEntryID: s.CurrentEntryID,
		StartedAt:      s.StartedAt,
		SwitchedAt:     s.SwitchedAt,
	}
}
