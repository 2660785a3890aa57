package time_entry_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeEntryRepo struct {
	db *pgxpool.Pool
}

func NewTimeEntryRepo(db *pgxpool.Pool) TimeEntryRepoContract {
	return &TimeEntryRepo{
		db: db,
	}
}

const entryColumns = `id, user_id, file_id, started_at, ended_at, note`

func scanEntry(row pgx.Row) (*entity.TimeEntryEntity, error) {
	var e entity.TimeEntryEntity
	if err := row.Scan(&e.ID, &e.UserID, &e.FileID, &e.StartedAt, &e.EndedAt, &e.Note); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetOpenEntryForUpdate sperrt den offenen Eintrag des Benutzers. Kein offener Eintrag ergibt (nil, nil).
func (r *TimeEntryRepo) GetOpenEntryForUpdate(ctx context.Context, t tx.Tx, userID string) (*entity.TimeEntryEntity, *app_errors.AppError) {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return nil, appErr
	}

	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE user_id = $1 AND ended_at IS NULL FOR UPDATE`
	e, err := scanEntry(pgTx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return e, nil
}

func (r *TimeEntryRepo) GetOpenEntry(ctx context.Context, userID string) (*entity.TimeEntryEntity, *app_errors.AppError) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE user_id = $1 AND ended_at IS NULL`
	e, err := scanEntry(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return e, nil
}

// InsertEntry legt einen offenen Eintrag an. Ein paralleler Start derselben Person
// scheitert am Index time_entries_one_open_per_user und wird zu CONFLICT.
func (r *TimeEntryRepo) InsertEntry(ctx context.Context, t tx.Tx, entry *entity.TimeEntryEntity) *app_errors.AppError {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	query := `
	INSERT INTO time_entries (
		id,
		user_id,
		file_id,
		started_at,
		note
	) VALUES (
		$1,$2,$3,$4,$5
	);
	`
	if _, err := pgTx.Exec(ctx, query, entry.ID, entry.UserID, entry.FileID, entry.StartedAt, entry.Note); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *TimeEntryRepo) CloseEntry(ctx context.Context, t tx.Tx, entryID string, endedAt time.Time) (*entity.TimeEntryEntity, *app_errors.AppError) {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return nil, appErr
	}

	query := `
	UPDATE time_entries
	SET ended_at = $1
	WHERE id = $2
		AND ended_at IS NULL
	RETURNING ` + entryColumns + `;
	`
	e, err := scanEntry(pgTx.QueryRow(ctx, query, endedAt, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "not_found.no_active_entry", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return e, nil
}

// ListOverlapping liefert alle Einträge, deren Intervall [From, To) schneidet,
// ungeschnitten. Das Zuschneiden übernimmt die Aggregation.
func (r *TimeEntryRepo) ListOverlapping(ctx context.Context, filter entity.TimeEntryFilter) ([]entity.ReportEntry, *app_errors.AppError) {
	conds := []string{"te.started_at < $1"}
	args := []any{filter.To, filter.From}

	if filter.IncludeOpen {
		conds = append(conds, "(te.ended_at IS NULL OR te.ended_at > $2)")
	} else {
		conds = append(conds, "te.ended_at IS NOT NULL AND te.ended_at > $2")
	}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("te.user_id = $%d", len(args)))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conds = append(conds, fmt.Sprintf("u.department_id = $%d", len(args)))
	}
	if filter.FileID != nil {
		args = append(args, *filter.FileID)
		conds = append(conds, fmt.Sprintf("te.file_id = $%d", len(args)))
	}

	query := `
	SELECT te.id, te.user_id, te.file_id, te.started_at, te.ended_at, te.note, u.name
	FROM time_entries te
	JOIN users u ON u.id = te.user_id
	WHERE ` + strings.Join(conds, " AND ") + `
	ORDER BY te.started_at ASC, te.id ASC;
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var entries []entity.ReportEntry
	for rows.Next() {
		var e entity.ReportEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.FileID, &e.StartedAt, &e.EndedAt, &e.Note, &e.UserName); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return entries, nil
}

func (r *TimeEntryRepo) ListLongRunning(ctx context.Context, startedBefore time.Time) ([]entity.LongRunningEntry, *app_errors.AppError) {
	query := `
	SELECT te.id, te.user_id, u.name, u.email, te.file_id, f.file_no, te.started_at
	FROM time_entries te
	JOIN users u ON u.id = te.user_id
	JOIN files f ON f.id = te.file_id
	WHERE te.ended_at IS NULL
		AND te.started_at < $1
	ORDER BY te.started_at ASC;
	`

	rows, err := r.db.Query(ctx, query, startedBefore)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var entries []entity.LongRunningEntry
	for rows.Next() {
		var e entity.LongRunningEntry
		if err := rows.Scan(&e.EntryID, &e.UserID, &e.UserName, &e.UserEmail, &e.FileID, &e.FileNo, &e.StartedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return entries, nil
}
