package cache

import (
	"context"
	"errors"
	"time"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// versionTTL hält Zähler länger als jeden gecachten Wert.
const versionTTL = 24 * time.Hour

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{client: redis}
}

// Get liest einen JSON-Wert aus Redis. Ein fehlender Schlüssel ist kein Fehler.
func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil // Cache-miss
	} else if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return true, nil
}

// Set serialisiert value als JSON und speichert es mit Ablaufzeit.
func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(value)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if err := r.client.Set(ctx, key, bytes, ttl).Err(); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return nil
}

// Del löscht key; kein Fehler, wenn er bereits fehlt.
func (r *RedisCache) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCache) Version(ctx context.Context, key string) (int64, *app_errors.AppError) {
	v, err := r.client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return v, nil
}

// SetIfVersion beobachtet den Zähler per WATCH. Ändert ihn ein Invalidate
// zwischen GET und EXEC, schlägt die Transaktion fehl und nichts wird geschrieben.
func (r *RedisCache) SetIfVersion(ctx context.Context, key string, version int64, value any, ttl time.Duration) (bool, *app_errors.AppError) {
	bytes, err := json.Marshal(value)
	if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	vkey := versionKey(key)
	stored := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, bytes, ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, vkey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return stored, nil
}

func (r *RedisCache) Invalidate(ctx context.Context, key string) error {
	vkey := versionKey(key)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vkey)
		pipe.Expire(ctx, vkey, versionTTL)
		pipe.Del(ctx, key)
		return nil
	})
	return err
}

func (r *RedisCache) Claim(ctx context.Context, key string, ttl time.Duration) (bool, *app_errors.AppError) {
	ok, err := r.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return ok, nil
}
