package use_cases

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/cache"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

var _ cache.Cache = (*MockCache)(nil)

// MockCache ist ein Cache mit austauschbaren Funktionen. Nicht gesetzte Funktionen
// verhalten sich wie ein leerer, fehlerfreier Cache. Versionen werden im Speicher
// gezählt, damit SetIfVersion nach einem Invalidate ablehnt wie Redis.
type MockCache struct {
	GetFn          func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetFn          func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError
	DelFn          func(ctx context.Context, key string) error
	ClaimFn        func(ctx context.Context, key string, ttl time.Duration) (bool, *app_errors.AppError)
	VersionFn      func(ctx context.Context, key string) (int64, *app_errors.AppError)
	SetIfVersionFn func(ctx context.Context, key string, version int64, val any, ttl time.Duration) (bool, *app_errors.AppError)

	GetCalled          int
	SetCalled          int
	DelCalled          int
	ClaimCalled        int
	SetIfVersionCalled int
	InvalidateCalled   int
	DeletedKeys        []string
	InvalidatedKeys    []string
	Stored             map[string]any

	versions map[string]int64
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	m.GetCalled++
	if m.GetFn == nil {
		return false, nil
	}
	return m.GetFn(ctx, key, dest)
}

func (m *MockCache) Set(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
	m.SetCalled++
	if m.SetFn == nil {
		return nil
	}
	return m.SetFn(ctx, key, val, ttl)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	m.DelCalled++
	m.DeletedKeys = append(m.DeletedKeys, key)
	if m.DelFn == nil {
		return nil
	}
	return m.DelFn(ctx, key)
}

func (m *MockCache) Version(ctx context.Context, key string) (int64, *app_errors.AppError) {
	if m.VersionFn != nil {
		return m.VersionFn(ctx, key)
	}
	return m.versions[key], nil
}

func (m *MockCache) SetIfVersion(ctx context.Context, key string, version int64, val any, ttl time.Duration) (bool, *app_errors.AppError) {
	m.SetIfVersionCalled++
	if m.SetIfVersionFn != nil {
		return m.SetIfVersionFn(ctx, key, version, val, ttl)
	}
	if m.versions[key] != version {
		return false, nil
	}
	if m.Stored == nil {
		m.Stored = map[string]any{}
	}
	m.Stored[key] = val
	return true, nil
}

func (m *MockCache) Invalidate(ctx context.Context, key string) error {
	m.InvalidateCalled++
	m.InvalidatedKeys = append(m.InvalidatedKeys, key)
	if m.versions == nil {
		m.versions = map[string]int64{}
	}
	m.versions[key]++
	delete(m.Stored, key)
	return nil
}

func (m *MockCache) Claim(ctx context.Context, key string, ttl time.Duration) (bool, *app_errors.AppError) {
	m.ClaimCalled++
	if m.ClaimFn == nil {
		return true, nil
	}
	return m.ClaimFn(ctx, key, ttl)
}
