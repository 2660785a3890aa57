package worker_handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/mail"
	use_cases "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases"
	worker_task "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

type fakeMailer struct {
	assigned  []mail.FileAssignedNotice
	reminded  []string
	failEntry string
}

func (f *fakeMailer) SendFileAssigned(ctx context.Context, n mail.FileAssignedNotice) error {
	f.assigned = append(f.assigned, n)
	return nil
}

func (f *fakeMailer) SendLongRunningReminder(ctx context.Context, e *entity.LongRunningEntry, elapsed time.Duration) error {
	if e.EntryID == f.failEntry {
		return errors.New("mailtrap down")
	}
	f.reminded = append(f.reminded, e.EntryID)
	return nil
}

type fixture struct {
	users   *use_cases.MockUserRepo
	files   *use_cases.MockFileRepo
	entries *use_cases.MockTimeEntryRepo
	cache   *use_cases.MockCache
	mailer  *fakeMailer
	wh      *WorkerHandler
}

func newFixture() *fixture {
	f := &fixture{
		users:   new(use_cases.MockUserRepo),
		files:   new(use_cases.MockFileRepo),
		entries: new(use_cases.MockTimeEntryRepo),
		cache:   &use_cases.MockCache{},
		mailer:  &fakeMailer{},
	}
	f.wh = &WorkerHandler{
		ur:        f.users,
		fr:        f.files,
		ter:       f.entries,
		cache:     f.cache,
		mailer:    f.mailer,
		threshold: 10 * time.Hour,
		now:       func() time.Time { return fixedNow },
	}
	return f
}

var noErr = (*app_errors.AppError)(nil)

func assignedTask(t *testing.T, designerID string) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(worker_task.FileAssignedPayload{
		FileID:     "file-1",
		FileNo:     "R-1001",
		DesignerID: designerID,
		ActorID:    "admin-1",
		Action:     string(entity.ActionAssign),
		AssignedAt: fixedNow,
	})
	require.NoError(t, err)
	return asynq.NewTask(worker_task.TaskFileAssignedEmail, b)
}

func TestFileAssignedEmail_Sends(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	designer := "user-1"

	f.files.On("GetFileByID", ctx, "file-1").Return(&entity.FileEntity{ID: "file-1", AssignedDesignerID: &designer}, noErr)
	f.users.On("FindByUserID", ctx, "user-1").Return(&entity.UserEntity{ID: "user-1", Name: "Ayse", Email: "ayse@repro.test", IsActive: true}, noErr)

	err := f.wh.FileAssignedEmail()(ctx, assignedTask(t, "user-1"))

	require.NoError(t, err)
	require.Len(t, f.mailer.assigned, 1)
	assert.Equal(t, "ayse@repro.test", f.mailer.assigned[0].To)
	assert.Equal(t, entity.ActionAssign, f.mailer.assigned[0].Action)
}

func TestFileAssignedEmail_SkipsWhenReassigned(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	other := "user-2"

	f.files.On("GetFileByID", ctx, "file-1").Return(&entity.FileEntity{ID: "file-1", AssignedDesignerID: &other}, noErr)

	err := f.wh.FileAssignedEmail()(ctx, assignedTask(t, "user-1"))

	require.NoError(t, err)
	assert.Empty(t, f.mailer.assigned)
	f.users.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestFileAssignedEmail_BadPayload(t *testing.T) {
	f := newFixture()

	err := f.wh.FileAssignedEmail()(context.Background(), asynq.NewTask(worker_task.TaskFileAssignedEmail, []byte("{")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestLongRunningEntries_OneReminderPerEntry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	claimed := map[string]bool{ReminderKey("e-old"): true}
	f.cache.ClaimFn = func(ctx context.Context, key string, ttl time.Duration) (bool, *app_errors.AppError) {
		if claimed[key] {
			return false, nil
		}
		claimed[key] = true
		return true, nil
	}

	f.entries.On("ListLongRunning", ctx, fixedNow.Add(-10*time.Hour)).Return([]entity.LongRunningEntry{
		{EntryID: "e-old", StartedAt: fixedNow.Add(-30 * time.Hour)},
		{EntryID: "e-new", StartedAt: fixedNow.Add(-11 * time.Hour)},
	}, noErr)

	require.NoError(t, f.wh.LongRunningEntries()(ctx, asynq.NewTask(worker_task.TaskLongRunningEntries, nil)))
	require.NoError(t, f.wh.LongRunningEntries()(ctx, asynq.NewTask(worker_task.TaskLongRunningEntries, nil)))

	assert.Equal(t, []string{"e-new"}, f.mailer.reminded)
}

func TestLongRunningEntries_ReleasesClaimOnMailFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.mailer.failEntry = "e-1"

	f.entries.On("ListLongRunning", ctx, mock.Anything).Return([]entity.LongRunningEntry{
		{EntryID: "e-1", StartedAt: fixedNow.Add(-12 * time.Hour)},
	}, noErr)

	require.NoError(t, f.wh.LongRunningEntries()(ctx, asynq.NewTask(worker_task.TaskLongRunningEntries, nil)))

	assert.Equal(t, []string{ReminderKey("e-1")}, f.cache.DeletedKeys)
}

func TestLongRunningEntries_RepoError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.entries.On("ListLongRunning", ctx, mock.Anything).Return([]entity.LongRunningEntry(nil), app_errors.NewInternal(errors.New("db down")))

	err := f.wh.LongRunningEntries()(ctx, asynq.NewTask(worker_task.TaskLongRunningEntries, nil))

	assert.Error(t, err)
	assert.Zero(t, f.cache.ClaimCalled)
}
