package cache

import (
	"context"
	"time"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type Cache interface {
	// Get dekodiert den Wert unter key nach dest. Bei Cache-Miss ist found false.
	Get(ctx context.Context, key string, dest any) (found bool, err *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
	// Version liefert den Invalidierungszähler von key, 0 wenn es keinen gibt.
	Version(ctx context.Context, key string) (int64, *app_errors.AppError)
	// SetIfVersion schreibt nur, solange der Zähler noch version ist. Ein Leser,
	// der vor einer Invalidierung aus der DB gelesen hat, überschreibt nichts.
	SetIfVersion(ctx context.Context, key string, version int64, value any, ttl time.Duration) (bool, *app_errors.AppError)
	// Invalidate erhöht den Zähler und löscht key in einer Transaktion.
	Invalidate(ctx context.Context, key string) error
	// Claim setzt key nur, wenn er noch nicht existiert (SETNX).
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, *app_errors.AppError)
}

func versionKey(key string) string {
	return key + ":version"
}

// WorkSessionKey ist der Schlüssel der gecachten aktiven Sitzung eines Benutzers.
func WorkSessionKey(userID string) string {
	return "work_session:" + userID
}
