package tx

import (
	"context"
	"fmt"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTxManager struct {
	db *pgxpool.Pool
}

func NewPgxTxManager(db *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{db: db}
}

// Begin startet eine READ COMMITTED Transaktion. Die Serialisierung pro Benutzer
// erfolgt über SELECT ... FOR UPDATE und den partiellen Unique-Index auf time_entries.
func (m *PgxTxManager) Begin(ctx context.Context) (Tx, *app_errors.AppError) {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &PgxTx{Tx: tx}, nil
}

type PgxTx struct {
	Tx pgx.Tx
}

func (t *PgxTx) Commit(ctx context.Context) *app_errors.AppError {
	if err := t.Tx.Commit(ctx); err != nil {
		return app_errors.NewAppError(
			fiber.StatusInternalServerError,
			app_errors.ErrInternal,
			"internal_error",
			err,
		)
	}
	return nil
}

func (t *PgxTx) Rollback(ctx context.Context) *app_errors.AppError {
	_ = t.Tx.Rollback(ctx)
	return nil
}

// Unwrap liefert die pgx-Transaktion hinter t. Repositories akzeptieren nur PgxTx.
func Unwrap(t Tx) (pgx.Tx, *app_errors.AppError) {
	p, ok := t.(*PgxTx)
	if !ok || p.Tx == nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", fmt.Errorf("unsupported transaction type %T", t))
	}
	return p.Tx, nil
}
