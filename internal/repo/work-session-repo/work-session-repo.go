package work_session_repo

import (
	"context"
	"errors"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkSessionRepo struct {
	db *pgxpool.Pool
}

func NewWorkSessionRepo(db *pgxpool.Pool) WorkSessionRepoContract {
	return &WorkSessionRepo{
		db: db,
	}
}

// Eine Sitzung zählt nur, wenn current_entry_id auf einen offenen Eintrag zeigt.
// Verwaiste Zeilen werden wie IDLE behandelt und beim nächsten Upsert überschrieben.
const activeSessionQuery = `
	SELECT ws.user_id, ws.current_file_id, ws.current_entry_id, ws.started_at, ws.switched_at
	FROM work_sessions ws
	JOIN time_entries te ON te.id = ws.current_entry_id AND te.ended_at IS NULL
	WHERE ws.user_id = $1
`

func scanSession(row pgx.Row) (*entity.WorkSessionEntity, *app_errors.AppError) {
	var s entity.WorkSessionEntity
	if err := row.Scan(&s.UserID, &s.CurrentFileID, &s.CurrentEntryID, &s.StartedAt, &s.SwitchedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &s, nil
}

func (r *WorkSessionRepo) GetActiveForUpdate(ctx context.Context, t tx.Tx, userID string) (*entity.WorkSessionEntity, *app_errors.AppError) {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return nil, appErr
	}
	return scanSession(pgTx.QueryRow(ctx, activeSessionQuery+` FOR UPDATE OF ws`, userID))
}

func (r *WorkSessionRepo) GetActive(ctx context.Context, userID string) (*entity.WorkSessionEntity, *app_errors.AppError) {
	return scanSession(r.db.QueryRow(ctx, activeSessionQuery, userID))
}

func (r *WorkSessionRepo) Upsert(ctx context.Context, t tx.Tx, session *entity.WorkSessionEntity) *app_errors.AppError {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	query := `
	INSERT INTO work_sessions (
		user_id,
		current_file_id,
		current_entry_id,
		started_at,
		switched_at
	) VALUES (
		$1,$2,$3,$4,$5
	)
	ON CONFLICT (user_id) DO UPDATE SET
		current_file_id = EXCLUDED.current_file_id,
		current_entry_id = EXCLUDED.current_entry_id,
		started_at = EXCLUDED.started_at,
		switched_at = EXCLUDED.switched_at;
	`
	if _, err := pgTx.Exec(ctx, query,
		session.UserID,
		session.CurrentFileID,
		session.CurrentEntryID,
		session.StartedAt,
		session.SwitchedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *WorkSessionRepo) Delete(ctx context.Context, t tx.Tx, userID string) *app_errors.AppError {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	if _, err := pgTx.Exec(ctx, `DELETE FROM work_sessions WHERE user_id = $1`, userID); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *WorkSessionRepo) ListActive(ctx context.Context) ([]entity.ActiveSessionView, *app_errors.AppError) {
	query := `
	SELECT ws.user_id, u.name, u.department_id, ws.current_file_id, f.file_no, ws.started_at, te.started_at
	FROM work_sessions ws
	JOIN time_entries te ON te.id = ws.current_entry_id AND te.ended_at IS NULL
	JOIN users u ON u.id = ws.user_id
	JOIN files f ON f.id = ws.current_file_id
	ORDER BY ws.started_at ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var sessions []entity.ActiveSessionView
	for rows.Next() {
		var s entity.ActiveSessionView
		if err := rows.Scan(&s.UserID, &s.UserName, &s.DepartmentID, &s.CurrentFileID, &s.FileNo, &s.StartedAt, &s.EntryStartedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return sessions, nil
}
