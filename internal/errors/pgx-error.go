package app_errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// constraintKeys ordnet bekannte Constraints einem i18n-Schlüssel zu.
var constraintKeys = map[string]string{
	"time_entries_one_open_per_user": "conflict.active_entry_exists",
	"work_sessions_pkey":             "conflict.session_exists",
}

func MapPgxError(err error) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			key, ok := constraintKeys[pgErr.ConstraintName]
			if !ok {
				key = "conflict"
			}
			return NewAppError(409, ErrConflict, key, err)
		case "23503": // foreign_key_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		case "22007", "22008": // invalid_datetime_format, datetime_field_overflow
			return NewAppError(400, ErrValidation, "validation.invalid_date", err)
		}
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}
