package file_repo

import (
	"context"
	"errors"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FileRepo struct {
	db *pgxpool.Pool
}

func NewFileRepo(db *pgxpool.Pool) FileRepoContract {
	return &FileRepo{
		db: db,
	}
}

const fileColumns = `id, file_no, customer_name, stage, status, assigned_designer_id, created_at, updated_at`

func scanFile(row pgx.Row) (*entity.FileEntity, *app_errors.AppError) {
	var f entity.FileEntity
	if err := row.Scan(&f.ID, &f.FileNo, &f.CustomerName, &f.Stage, &f.Status, &f.AssignedDesignerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "file_not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &f, nil
}

func (r *FileRepo) GetFileByID(ctx context.Context, fileID string) (*entity.FileEntity, *app_errors.AppError) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return scanFile(r.db.QueryRow(ctx, query, fileID))
}

// GetFileForUpdate sperrt die Zeile bis zum Ende der Transaktion.
func (r *FileRepo) GetFileForUpdate(ctx context.Context, t tx.Tx, fileID string) (*entity.FileEntity, *app_errors.AppError) {
	pgTx, err := tx.Unwrap(t)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 FOR UPDATE`
	return scanFile(pgTx.QueryRow(ctx, query, fileID))
}

func (r *FileRepo) UpdateAssignee(ctx context.Context, t tx.Tx, fileID, designerID string) (*entity.FileAssignment, *app_errors.AppError) {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return nil, appErr
	}

	query := `
	UPDATE files
	SET assigned_designer_id = $1,
		updated_at = now()
	WHERE id = $2
	RETURNING id, stage, status, assigned_designer_id;
	`

	var row entity.FileAssignment
	if err := pgTx.QueryRow(ctx, query, designerID, fileID).Scan(&row.ID, &row.Stage, &row.Status, &row.AssignedDesignerID); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return &row, nil
}

func (r *FileRepo) TransferToRepro(ctx context.Context, t tx.Tx, fileID, designerID string) (*entity.FileAssignment, *app_errors.AppError) {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return nil, appErr
	}

	query := `
	UPDATE files
	SET stage = 'REPRO',
		assigned_designer_id = $1,
		updated_at = now()
	WHERE id = $2
		AND stage = 'PRE_REPRO'
	RETURNING id, stage, status, assigned_designer_id;
	`

	var row entity.FileAssignment
	if err := pgTx.QueryRow(ctx, query, designerID, fileID).Scan(&row.ID, &row.Stage, &row.Status, &row.AssignedDesignerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.file_not_in_pre_repro", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &row, nil
}

func (r *FileRepo) UpdateStatus(ctx context.Context, t tx.Tx, fileID string, status entity.FileStatus) *app_errors.AppError {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	query := `UPDATE files SET status = $1, updated_at = now() WHERE id = $2`
	tag, err := pgTx.Exec(ctx, query, status, fileID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "file_not_found", nil)
	}
	return nil
}

// ListPoolFiles liefert nur Mappen, die bereits nach REPRO übergeben wurden.
func (r *FileRepo) ListPoolFiles(ctx context.Context, designerID string) ([]entity.PoolFile, *app_errors.AppError) {
	query := `
	SELECT id, file_no, customer_name, stage, status, assigned_designer_id, updated_at
	FROM files
	WHERE stage = 'REPRO'
		AND assigned_designer_id = $1
	ORDER BY updated_at DESC NULLS LAST, file_no ASC;
	`

	rows, err := r.db.Query(ctx, query, designerID)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var files []entity.PoolFile
	for rows.Next() {
		var f entity.PoolFile
		if err := rows.Scan(&f.ID, &f.FileNo, &f.CustomerName, &f.Stage, &f.Status, &f.DesignerID, &f.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return files, nil
}

func (r *FileRepo) ListPreReproQueue(ctx context.Context) ([]entity.FileEntity, *app_errors.AppError) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE stage = 'PRE_REPRO' ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var files []entity.FileEntity
	for rows.Next() {
		f, appErr := scanFile(rows)
		if appErr != nil {
			return nil, appErr
		}
		files = append(files, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return files, nil
}

func (r *FileRepo) InsertFileEvent(ctx context.Context, t tx.Tx, event *entity.FileEventEntity) *app_errors.AppError {
	pgTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	query := `
	INSERT INTO file_events (
		id,
		file_id,
		actor_id,
		target_user_id,
		action,
		from_stage,
		to_stage,
		from_status,
		to_status,
		note
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,$8,$9,$10
	)
	RETURNING created_at;
	`
	if err := pgTx.QueryRow(ctx, query,
		event.ID,
		event.FileID,
		event.ActorID,
		event.TargetUserID,
		event.Action,
		event.FromStage,
		event.ToStage,
		event.FromStatus,
		event.ToStatus,
		event.Note,
	).Scan(&event.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

// ListFileEvents liefert den Audit-Trail einer Mappe, älteste zuerst.
func (r *FileRepo) ListFileEvents(ctx context.Context, fileID string) ([]entity.FileEventEntity, *app_errors.AppError) {
	query := `
	SELECT id, file_id, actor_id, target_user_id, action, from_stage, to_stage, from_status, to_status, note, created_at
	FROM file_events
	WHERE file_id = $1
	ORDER BY created_at ASC, id ASC;
	`

	rows, err := r.db.Query(ctx, query, fileID)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var events []entity.FileEventEntity
	for rows.Next() {
		var e entity.FileEventEntity
		if err := rows.Scan(&e.ID, &e.FileID, &e.ActorID, &e.TargetUserID, &e.Action, &e.FromStage, &e.ToStage, &e.FromStatus, &e.ToStatus, &e.Note, &e.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return events, nil
}
