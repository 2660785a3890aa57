package use_cases

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	file_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/file-repo"
	time_entry_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/time-entry-repo"
	user_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/user-repo"
	work_session_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/work-session-repo"
	"github.com/stretchr/testify/mock"
)

var (
	_ user_repo.UserRepoContract                = (*MockUserRepo)(nil)
	_ file_repo.FileRepoContract                = (*MockFileRepo)(nil)
	_ time_entry_repo.TimeEntryRepoContract     = (*MockTimeEntryRepo)(nil)
	_ work_session_repo.WorkSessionRepoContract = (*MockWorkSessionRepo)(nil)
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) FindDepartmentByID(ctx context.Context, departmentID string) (*entity.DepartmentEntity, *app_errors.AppError) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(*entity.DepartmentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ListDepartmentUsers(ctx context.Context, departmentID string) ([]entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).([]entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

type MockFileRepo struct {
	mock.Mock
}

func (m *MockFileRepo) GetFileByID(ctx context.Context, fileID string) (*entity.FileEntity, *app_errors.AppError) {
	args := m.Called(ctx, fileID)
	return args.Get(0).(*entity.FileEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileRepo) GetFileForUpdate(ctx context.Context, t tx.Tx, fileID string) (*entity.FileEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, fileID)
	return args.Get(0).(*entity.FileEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileRepo) UpdateAssignee(ctx context.Context, t tx.Tx, fileID, designerID string) (*entity.FileAssignment, *app_errors.AppError) {
	args := m.Called(ctx, t, fileID, designerID)
	return args.Get(0).(*entity.FileAssignment), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileRepo) TransferToRepro(ctx context.Context, t tx.Tx, fileID, designerID string) (*entity.FileAssignment, *app_errors.AppError) {
	args := m.Called(ctx, t, fileID, designerID)
	return args.Get(0).(*entity.FileAssignment), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileRepo) UpdateStatus(ctx context.Context, t tx.Tx, fileID string, status entity.FileStatus) *app_errors.AppError {
	args := m.Called(ctx, t, fileID, status)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockFileRepo) ListPoolFiles(ctx context.Context, designerID string) ([]entity.PoolFile, *app_errors.AppError) {
	args := m.Called(ctx, designerID)
	return args.Get(0).([]entity.PoolFile), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileRepo) ListPreReproQueue(ctx context.Context) ([]entity.FileEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.FileEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockFileRepo) InsertFileEvent(ctx context.Context, t tx.Tx, event *entity.FileEventEntity) *app_errors.AppError {
	args := m.Called(ctx, t, event)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockFileRepo) ListFileEvents(ctx context.Context, fileID string) ([]entity.FileEventEntity, *app_errors.AppError) {
	args := m.Called(ctx, fileID)
	return args.Get(0).([]entity.FileEventEntity), args.Get(1).(*app_errors.AppError)
}

type MockTimeEntryRepo struct {
	mock.Mock
}

func (m *MockTimeEntryRepo) GetOpenEntryForUpdate(ctx context.Context, t tx.Tx, userID string) (*entity.TimeEntryEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, userID)
	return args.Get(0).(*entity.TimeEntryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) GetOpenEntry(ctx context.Context, userID string) (*entity.TimeEntryEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.TimeEntryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) InsertEntry(ctx context.Context, t tx.Tx, entry *entity.TimeEntryEntity) *app_errors.AppError {
	args := m.Called(ctx, t, entry)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) CloseEntry(ctx context.Context, t tx.Tx, entryID string, endedAt time.Time) (*entity.TimeEntryEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, entryID, endedAt)
	return args.Get(0).(*entity.TimeEntryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) ListOverlapping(ctx context.Context, filter entity.TimeEntryFilter) ([]entity.ReportEntry, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ReportEntry), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) ListLongRunning(ctx context.Context, startedBefore time.Time) ([]entity.LongRunningEntry, *app_errors.AppError) {
	args := m.Called(ctx, startedBefore)
	return args.Get(0).([]entity.LongRunningEntry), args.Get(1).(*app_errors.AppError)
}

type MockWorkSessionRepo struct {
	mock.Mock
}

func (m *MockWorkSessionRepo) GetActiveForUpdate(ctx context.Context, t tx.Tx, userID string) (*entity.WorkSessionEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, userID)
	return args.Get(0).(*entity.WorkSessionEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkSessionRepo) GetActive(ctx context.Context, userID string) (*entity.WorkSessionEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.WorkSessionEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkSessionRepo) Upsert(ctx context.Context, t tx.Tx, session *entity.WorkSessionEntity) *app_errors.AppError {
	args := m.Called(ctx, t, session)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockWorkSessionRepo) Delete(ctx context.Context, t tx.Tx, userID string) *app_errors.AppError {
	args := m.Called(ctx, t, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockWorkSessionRepo) ListActive(ctx context.Context) ([]entity.ActiveSessionView, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.ActiveSessionView), args.Get(1).(*app_errors.AppError)
}

// MockGate spielt die Tracking-Prüfung der Mappen-Freigabe nach.
type MockGate struct {
	mock.Mock
}

func (m *MockGate) AuthorizeTracking(ctx context.Context, actor entity.Actor, fileID string) *app_errors.AppError {
	args := m.Called(ctx, actor, fileID)
	return args.Get(0).(*app_errors.AppError)
}
