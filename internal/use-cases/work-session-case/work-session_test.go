package work_session_case

import (
	"context"
	"testing"
	"time"

	work_session_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/work-session-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	use_cases "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases"
	time_entry_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/time-entry-case"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	sessions  *use_cases.MockWorkSessionRepo
	entries   *use_cases.MockTimeEntryRepo
	txManager *use_cases.MockTxManager
	tx        *use_cases.MockTx
	gate      *use_cases.MockGate
	cache     *use_cases.MockCache
	service   *WorkSessionService
}

func newFixture() *fixture {
	f := &fixture{
		sessions:  new(use_cases.MockWorkSessionRepo),
		entries:   new(use_cases.MockTimeEntryRepo),
		txManager: new(use_cases.MockTxManager),
		tx:        new(use_cases.MockTx),
		gate:      new(use_cases.MockGate),
		cache:     &use_cases.MockCache{},
	}
	f.service = &WorkSessionService{
		repo:      f.sessions,
		ledger:    time_entry_case.NewLedger(f.entries),
		txManager: f.txManager,
		gate:      f.gate,
		cache:     f.cache,
		cacheTTL:  30 * time.Second,
		now:       func() time.Time { return fixedNow },
	}
	return f
}

func (f *fixture) expectTx(ctx context.Context, commit bool) {
	f.txManager.On("Begin", ctx).Return(f.tx, (*app_errors.AppError)(nil))
	f.tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	if commit {
		f.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	}
}

var designer = entity.Actor{UserID: "user-1", Role: entity.GRAFIKER}

func TestStartWork_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.gate.On("AuthorizeTracking", ctx, designer, "file-1").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, true)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return((*entity.WorkSessionEntity)(nil), (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return((*entity.TimeEntryEntity)(nil), (*app_errors.AppError)(nil))
	f.entries.On("InsertEntry", ctx, f.tx, mock.Anything).Return((*app_errors.AppError)(nil))
	f.sessions.On("Upsert", ctx, f.tx, mock.MatchedBy(func(s *entity.WorkSessionEntity) bool {
		return s.CurrentFileID == "file-1" && s.CurrentEntryID != "" && s.StartedAt.Equal(fixedNow)
	})).Return((*app_errors.AppError)(nil))

	resp, err := f.service.StartWork(ctx, designer, &work_session_dto.StartWorkRequest{FileID: "file-1"})

	require.Nil(t, err)
	assert.Equal(t, "file-1", resp.CurrentFileID)
	assert.Equal(t, []string{"work_session:user-1"}, f.cache.InvalidatedKeys)
	f.entries.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
	f.tx.AssertExpectations(t)
}

func TestStartWork_SameFileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	existing := &entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1", CurrentEntryID: "entry-1", StartedAt: fixedNow.Add(-time.Hour), SwitchedAt: fixedNow.Add(-time.Hour)}

	f.gate.On("AuthorizeTracking", ctx, designer, "file-1").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, false)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return(existing, (*app_errors.AppError)(nil))

	resp, err := f.service.StartWork(ctx, designer, &work_session_dto.StartWorkRequest{FileID: "file-1"})

	require.Nil(t, err)
	assert.Equal(t, "entry-1", resp.CurrentEntryID)
	f.entries.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything, mock.Anything)
	f.sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 0, f.cache.InvalidateCalled)
}

func TestStartWork_OtherFileActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	existing := &entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1", CurrentEntryID: "entry-1"}

	f.gate.On("AuthorizeTracking", ctx, designer, "file-2").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, false)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return(existing, (*app_errors.AppError)(nil))

	resp, err := f.service.StartWork(ctx, designer, &work_session_dto.StartWorkRequest{FileID: "file-2"})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, "conflict.session_active_on_other_file", err.MessageKey)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

// Ein offener Eintrag ohne Sitzung blockiert den Start ebenso.
func TestStartWork_BareLedgerEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.gate.On("AuthorizeTracking", ctx, designer, "file-2").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, false)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return((*entity.WorkSessionEntity)(nil), (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return(&entity.TimeEntryEntity{ID: "entry-1", FileID: "file-1"}, (*app_errors.AppError)(nil))

	_, err := f.service.StartWork(ctx, designer, &work_session_dto.StartWorkRequest{FileID: "file-2"})

	require.NotNil(t, err)
	assert.Equal(t, "conflict.active_entry_exists", err.MessageKey)
	f.sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeFile_ClosesAndOpens(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	started := fixedNow.Add(-30 * time.Minute)
	current := &entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1", CurrentEntryID: "entry-1", StartedAt: started, SwitchedAt: started}
	open := &entity.TimeEntryEntity{ID: "entry-1", UserID: "user-1", FileID: "file-1", StartedAt: started}
	ended := fixedNow
	closed := &entity.TimeEntryEntity{ID: "entry-1", UserID: "user-1", FileID: "file-1", StartedAt: started, EndedAt: &ended}

	f.gate.On("AuthorizeTracking", ctx, designer, "file-2").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, true)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return(current, (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return(open, (*app_errors.AppError)(nil)).Once()
	f.entries.On("CloseEntry", ctx, f.tx, "entry-1", fixedNow).Return(closed, (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return((*entity.TimeEntryEntity)(nil), (*app_errors.AppError)(nil)).Once()
	f.entries.On("InsertEntry", ctx, f.tx, mock.MatchedBy(func(e *entity.TimeEntryEntity) bool {
		return e.FileID == "file-2" && e.StartedAt.Equal(fixedNow)
	})).Return((*app_errors.AppError)(nil))
	f.sessions.On("Upsert", ctx, f.tx, mock.MatchedBy(func(s *entity.WorkSessionEntity) bool {
		return s.CurrentFileID == "file-2" && s.StartedAt.Equal(started) && s.SwitchedAt.Equal(fixedNow) && s.CurrentEntryID != "entry-1"
	})).Return((*app_errors.AppError)(nil))

	resp, err := f.service.ChangeFile(ctx, designer, &work_session_dto.ChangeFileRequest{FileID: "file-2"})

	require.Nil(t, err)
	assert.Equal(t, "file-2", resp.Session.CurrentFileID)
	require.NotNil(t, resp.ClosedEntry)
	assert.Equal(t, int64(30*60), resp.ClosedEntry.DurationSeconds)
	f.entries.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
	f.tx.AssertExpectations(t)
}

// Scheitert das Öffnen, wird nichts committet: Schließen und Öffnen gehen gemeinsam zurück.
func TestChangeFile_OpenFailsRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	current := &entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1", CurrentEntryID: "entry-1"}
	open := &entity.TimeEntryEntity{ID: "entry-1", UserID: "user-1", FileID: "file-1", StartedAt: fixedNow.Add(-time.Minute)}
	ended := fixedNow
	closed := &entity.TimeEntryEntity{ID: "entry-1", UserID: "user-1", FileID: "file-1", StartedAt: open.StartedAt, EndedAt: &ended}
	storage := app_errors.NewInternal(assert.AnError)

	f.gate.On("AuthorizeTracking", ctx, designer, "file-2").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, false)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return(current, (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return(open, (*app_errors.AppError)(nil)).Once()
	f.entries.On("CloseEntry", ctx, f.tx, "entry-1", fixedNow).Return(closed, (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return((*entity.TimeEntryEntity)(nil), (*app_errors.AppError)(nil)).Once()
	f.entries.On("InsertEntry", ctx, f.tx, mock.Anything).Return(storage)

	resp, err := f.service.ChangeFile(ctx, designer, &work_session_dto.ChangeFileRequest{FileID: "file-2"})

	assert.Nil(t, resp)
	assert.Equal(t, storage, err)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
	f.tx.AssertCalled(t, "Rollback", ctx)
	assert.Equal(t, 0, f.cache.InvalidateCalled)
}

func TestChangeFile_Idle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.gate.On("AuthorizeTracking", ctx, designer, "file-2").Return((*app_errors.AppError)(nil))
	f.expectTx(ctx, false)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return((*entity.WorkSessionEntity)(nil), (*app_errors.AppError)(nil))

	_, err := f.service.ChangeFile(ctx, designer, &work_session_dto.ChangeFileRequest{FileID: "file-2"})

	require.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "not_found.no_active_session", err.MessageKey)
}

func TestStopWork_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	started := fixedNow.Add(-20 * time.Minute)
	current := &entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1", CurrentEntryID: "entry-1", StartedAt: started}
	open := &entity.TimeEntryEntity{ID: "entry-1", UserID: "user-1", FileID: "file-1", StartedAt: started}
	ended := fixedNow
	closed := &entity.TimeEntryEntity{ID: "entry-1", UserID: "user-1", FileID: "file-1", StartedAt: started, EndedAt: &ended}

	f.expectTx(ctx, true)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return(current, (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return(open, (*app_errors.AppError)(nil))
	f.entries.On("CloseEntry", ctx, f.tx, "entry-1", fixedNow).Return(closed, (*app_errors.AppError)(nil))
	f.sessions.On("Delete", ctx, f.tx, "user-1").Return((*app_errors.AppError)(nil))

	resp, err := f.service.StopWork(ctx, designer)

	require.Nil(t, err)
	require.NotNil(t, resp.ClosedEntry)
	assert.Equal(t, int64(20*60), resp.ClosedEntry.DurationSeconds)
	assert.Equal(t, 1, f.cache.InvalidateCalled)
}

func TestStopWork_Idle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.expectTx(ctx, false)
	f.sessions.On("GetActiveForUpdate", ctx, f.tx, "user-1").Return((*entity.WorkSessionEntity)(nil), (*app_errors.AppError)(nil))
	f.entries.On("GetOpenEntryForUpdate", ctx, f.tx, "user-1").Return((*entity.TimeEntryEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := f.service.StopWork(ctx, designer)

	assert.Nil(t, err)
	assert.Nil(t, resp)
	f.sessions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGetActiveSession_CacheHit(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.cache.GetFn = func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
		assert.Equal(t, "work_session:user-1", key)
		*dest.(*work_session_dto.WorkSessionResponse) = work_session_dto.WorkSessionResponse{UserID: "user-1", CurrentFileID: "file-1"}
		return true, nil
	}

	resp, err := f.service.GetActiveSession(ctx, "user-1")

	require.Nil(t, err)
	assert.Equal(t, "file-1", resp.CurrentFileID)
	f.sessions.AssertNotCalled(t, "GetActive", mock.Anything, mock.Anything)
}

func TestGetActiveSession_CacheMissAndError(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.cache.GetFn = func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
		return false, app_errors.NewInternal(assert.AnError)
	}
	var storedTTL time.Duration
	f.cache.SetIfVersionFn = func(ctx context.Context, key string, version int64, val any, ttl time.Duration) (bool, *app_errors.AppError) {
		storedTTL = ttl
		return false, app_errors.NewInternal(assert.AnError)
	}
	f.sessions.On("GetActive", ctx, "user-1").Return(&entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-3"}, (*app_errors.AppError)(nil))

	resp, err := f.service.GetActiveSession(ctx, "user-1")

	require.Nil(t, err)
	assert.Equal(t, "file-3", resp.CurrentFileID)
	assert.Equal(t, 30*time.Second, storedTTL)
}

func TestGetActiveSession_Idle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.sessions.On("GetActive", ctx, "user-1").Return((*entity.WorkSessionEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := f.service.GetActiveSession(ctx, "user-1")

	assert.Nil(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 0, f.cache.SetIfVersionCalled)
}

func TestGetActiveSession_CachesFreshRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.sessions.On("GetActive", ctx, "user-1").Return(&entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1"}, (*app_errors.AppError)(nil))

	_, err := f.service.GetActiveSession(ctx, "user-1")

	require.Nil(t, err)
	require.Contains(t, f.cache.Stored, "work_session:user-1")
	assert.Equal(t, "file-1", f.cache.Stored["work_session:user-1"].(*work_session_dto.WorkSessionResponse).CurrentFileID)
}

func TestGetActiveSession_StopDuringReadIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	// StopWork committet und invalidiert, während GetActiveSession noch die alte Zeile hält
	f.sessions.On("GetActive", ctx, "user-1").
		Run(func(args mock.Arguments) {
			f.service.invalidate(ctx, "user-1")
		}).
		Return(&entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1"}, (*app_errors.AppError)(nil))

	resp, err := f.service.GetActiveSession(ctx, "user-1")

	require.Nil(t, err)
	assert.Equal(t, "file-1", resp.CurrentFileID)
	assert.Equal(t, 1, f.cache.SetIfVersionCalled)
	assert.NotContains(t, f.cache.Stored, "work_session:user-1")
}

func TestGetActiveSession_VersionErrorSkipsCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.cache.VersionFn = func(ctx context.Context, key string) (int64, *app_errors.AppError) {
		return 0, app_errors.NewInternal(assert.AnError)
	}
	f.sessions.On("GetActive", ctx, "user-1").Return(&entity.WorkSessionEntity{UserID: "user-1", CurrentFileID: "file-1"}, (*app_errors.AppError)(nil))

	resp, err := f.service.GetActiveSession(ctx, "user-1")

	require.Nil(t, err)
	assert.Equal(t, "file-1", resp.CurrentFileID)
	assert.Equal(t, 0, f.cache.SetIfVersionCalled)
}

func TestGetAllActiveSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("admin", func(t *testing.T) {
		f := newFixture()
		f.sessions.On("ListActive", ctx).Return([]entity.ActiveSessionView{
			{UserID: "user-1", UserName: "Ayşe", CurrentFileID: "file-1", FileNo: "R-1", StartedAt: fixedNow.Add(-75 * time.Minute)},
		}, (*app_errors.AppError)(nil))

		items, err := f.service.GetAllActiveSessions(ctx, entity.Actor{UserID: "admin-1", Role: entity.ADMIN})

		require.Nil(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(75*60), items[0].ElapsedSeconds)
		assert.Equal(t, "01:15:00", items[0].Elapsed)
	})

	t.Run("designer", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetAllActiveSessions(ctx, designer)

		require.NotNil(t, err)
		assert.Equal(t, app_errors.ErrForbidden, err.Type)
	})
}
