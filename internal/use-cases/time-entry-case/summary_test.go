package time_entry_case

import (
	"context"
	"testing"
	"time"

	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	use_cases "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func closedEntry(id, userID, fileID string, start, end time.Time) entity.ReportEntry {
	return entity.ReportEntry{
		TimeEntryEntity: entity.TimeEntryEntity{ID: id, UserID: userID, FileID: fileID, StartedAt: start, EndedAt: &end},
	}
}

func TestClippedSeconds(t *testing.T) {
	w := utils.Window{From: fixedNow, To: fixedNow.Add(time.Hour)}
	end := func(d time.Duration) *time.Time { v := fixedNow.Add(d); return &v }

	tests := []struct {
		name  string
		entry entity.TimeEntryEntity
		now   time.Time
		want  int64
	}{
		{"inside", entity.TimeEntryEntity{StartedAt: fixedNow.Add(10 * time.Minute), EndedAt: end(20 * time.Minute)}, fixedNow, 600},
		{"starts before window", entity.TimeEntryEntity{StartedAt: fixedNow.Add(-time.Hour), EndedAt: end(15 * time.Minute)}, fixedNow, 900},
		{"ends after window", entity.TimeEntryEntity{StartedAt: fixedNow.Add(50 * time.Minute), EndedAt: end(3 * time.Hour)}, fixedNow, 600},
		{"covers window", entity.TimeEntryEntity{StartedAt: fixedNow.Add(-time.Hour), EndedAt: end(2 * time.Hour)}, fixedNow, 3600},
		{"before window", entity.TimeEntryEntity{StartedAt: fixedNow.Add(-time.Hour), EndedAt: end(0)}, fixedNow, 0},
		{"open capped at now", entity.TimeEntryEntity{StartedAt: fixedNow.Add(10 * time.Minute)}, fixedNow.Add(40 * time.Minute), 1800},
		{"open capped at to", entity.TimeEntryEntity{StartedAt: fixedNow.Add(10 * time.Minute)}, fixedNow.Add(5 * time.Hour), 3000},
		{"open starts after now", entity.TimeEntryEntity{StartedAt: fixedNow.Add(10 * time.Minute)}, fixedNow, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClippedSeconds(&tt.entry, w, tt.now))
		})
	}
}

func TestSummarize_GroupsByFileAndDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	// 23:30 bis 00:30 Ortszeit verteilt sich auf zwei Tage.
	start := time.Date(2026, 3, 9, 23, 30, 0, 0, loc)
	entries := []entity.ReportEntry{
		closedEntry("e1", "u1", "file-a", start, start.Add(time.Hour)),
		closedEntry("e2", "u1", "file-b", start.Add(2*time.Hour), start.Add(2*time.Hour+15*time.Minute)),
	}
	w := utils.Window{From: start.Add(-24 * time.Hour), To: start.Add(24 * time.Hour)}

	s := Summarize(entries, w, start.Add(48*time.Hour), loc)

	assert.Equal(t, int64(4500), s.TotalSeconds)
	assert.Equal(t, "01:15:00", s.Total)
	assert.Equal(t, 2, s.EntryCount)
	assert.Equal(t, int64(0), s.OpenSeconds)

	require.Len(t, s.ByFile, 2)
	assert.Equal(t, "file-a", s.ByFile[0].FileID)
	assert.Equal(t, int64(3600), s.ByFile[0].TotalSeconds)
	assert.Equal(t, "file-b", s.ByFile[1].FileID)

	require.Len(t, s.ByDay, 2)
	assert.Equal(t, report_dto.DayTotal{Day: "2026-03-09", TotalSeconds: 1800, Total: "00:30:00"}, s.ByDay[0])
	assert.Equal(t, report_dto.DayTotal{Day: "2026-03-10", TotalSeconds: 2700, Total: "00:45:00"}, s.ByDay[1])
}

func TestGroupByUser_SumsToTotal(t *testing.T) {
	w := utils.Window{From: fixedNow, To: fixedNow.Add(8 * time.Hour)}
	entries := []entity.ReportEntry{
		closedEntry("e1", "u1", "f1", fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour)),
		closedEntry("e2", "u2", "f1", fixedNow.Add(2*time.Hour), fixedNow.Add(3*time.Hour)),
		closedEntry("e3", "u1", "f2", fixedNow.Add(4*time.Hour), fixedNow.Add(4*time.Hour+7*time.Second)),
	}

	users, total, count := SortedUserTotals(GroupByUser(entries, w, fixedNow))
	summary := Summarize(entries, w, fixedNow, time.UTC)

	assert.Equal(t, summary.TotalSeconds, total)
	assert.Equal(t, summary.EntryCount, count)
	require.Len(t, users, 2)

	var sum int64
	for _, u := range users {
		sum += u.TotalSeconds
	}
	assert.Equal(t, total, sum)
}

func TestResolveWindow(t *testing.T) {
	t.Run("period", func(t *testing.T) {
		w, err := ResolveWindow(utils.PeriodToday, "", "", fixedNow, time.UTC, 31)
		require.Nil(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), w.From)
	})

	t.Run("explicit range", func(t *testing.T) {
		w, err := ResolveWindow("", "2026-03-01T00:00:00Z", "2026-03-02T00:00:00+03:00", fixedNow, time.UTC, 31)
		require.Nil(t, err)
		assert.Equal(t, 21*time.Hour, w.To.Sub(w.From))
	})

	tests := []struct {
		name       string
		period     string
		from, to   string
		wantField  string
		wantMsgKey string
	}{
		{"both period and range", utils.PeriodWeek, "2026-03-01T00:00:00Z", "", "period", "validation.period_or_range"},
		{"nothing", "", "", "", "period", "validation.required_without"},
		{"unknown period", "fortnight", "", "", "period", "validation.period"},
		{"bad from", "", "yesterday", "2026-03-02T00:00:00Z", "from", "validation.datetime"},
		{"bad to", "", "2026-03-01T00:00:00Z", "2026-03-02", "to", "validation.datetime"},
		{"reversed", "", "2026-03-02T00:00:00Z", "2026-03-01T00:00:00Z", "to", "validation.after"},
		{"empty window", "", "2026-03-02T00:00:00Z", "2026-03-02T00:00:00Z", "to", "validation.after"},
		{"too large", "", "2026-01-01T00:00:00Z", "2026-03-01T00:00:00Z", "to", "validation.window_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveWindow(tt.period, tt.from, tt.to, fixedNow, time.UTC, 31)
			require.NotNil(t, err)
			assert.Equal(t, app_errors.ErrValidation, err.Type)
			require.Len(t, err.Details, 1)
			assert.Equal(t, tt.wantField, err.Details[0].Field)
			assert.Equal(t, tt.wantMsgKey, err.Details[0].MessageKey)
		})
	}
}

func TestGetSummary_PassesFilter(t *testing.T) {
	ctx := context.Background()

	repo := new(use_cases.MockTimeEntryRepo)
	service := newTestService(repo, new(use_cases.MockTxManager), new(use_cases.MockGate), &use_cases.MockCache{})

	entries := []entity.ReportEntry{
		closedEntry("e1", "user-1", "file-1", fixedNow.Add(-2*time.Hour), fixedNow.Add(-time.Hour)),
		{TimeEntryEntity: entity.TimeEntryEntity{ID: "e2", UserID: "user-1", FileID: "file-2", StartedAt: fixedNow.Add(-30 * time.Minute)}},
	}
	repo.On("ListOverlapping", ctx, mock.MatchedBy(func(f entity.TimeEntryFilter) bool {
		return f.UserID != nil && *f.UserID == "user-1" && f.IncludeOpen && f.DepartmentID == nil && f.FileID == nil
	})).Return(entries, (*app_errors.AppError)(nil))

	resp, err := service.GetSummary(ctx, "user-1", report_dto.WindowQuery{Period: utils.PeriodToday, IncludeOpen: true})

	require.Nil(t, err)
	assert.Equal(t, int64(5400), resp.TotalSeconds)
	assert.Equal(t, int64(1800), resp.OpenSeconds)
	assert.Equal(t, 2, resp.EntryCount)
}
