package tx

import (
	"context"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

// Tx ist eine offene Transaktion. Rollback nach Commit ist ein No-op,
// daher dürfen Aufrufer Rollback immer per defer registrieren.
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
