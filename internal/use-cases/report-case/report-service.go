package report_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	file_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/file-repo"
	time_entry_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/time-entry-repo"
	user_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/user-repo"
	time_entry_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/time-entry-case"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportService liest nur. Berichte dürfen einen gerade wechselnden Eintrag leicht veraltet zeigen.
type ReportService struct {
	entries time_entry_repo.TimeEntryRepoContract
	users   user_repo.UserRepoContract
	files   file_repo.FileRepoContract
	loc     *time.Location
	maxDays int
	now     func() time.Time
}

func NewReportService(db *pgxpool.Pool, cfg *config.AppConfig) ReportServiceContract {
	return &ReportService{
		entries: time_entry_repo.NewTimeEntryRepo(db),
		users:   user_repo.NewUserRepo(db),
		files:   file_repo.NewFileRepo(db),
		loc:     cfg.Location(),
		maxDays: cfg.TRACKING.MaxReportDays,
		now:     time.Now,
	}
}

// GetWorkerTimeSummary: eigene Zeiten immer, fremde nur mit report:view_any_worker.
func (s *ReportService) GetWorkerTimeSummary(ctx context.Context, actor entity.Actor, userID string, q report_dto.WindowQuery) (*report_dto.WorkerReport, *app_errors.AppError) {
	if userID != actor.UserID && !permission.Has(actor.Role, permission.ReportViewAnyWorker) {
		return nil, app_errors.NewForbidden("forbidden")
	}

	now := s.now()
	w, err := time_entry_case.ResolveWindow(q.Period, q.From, q.To, now, s.loc, s.maxDays)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListOverlapping(ctx, entity.TimeEntryFilter{
		UserID:      &userID,
		From:        w.From,
		To:          w.To,
		IncludeOpen: q.IncludeOpen,
	})
	if err != nil {
		return nil, err
	}

	return &report_dto.WorkerReport{
		UserID:      user.ID,
		UserName:    user.Name,
		TimeSummary: time_entry_case.Summarize(entries, w, now, s.loc),
	}, nil
}

// GetDepartmentTotalTime summiert über die aktuelle Abteilungszugehörigkeit.
// Benutzer ohne Zeiten erscheinen mit 0, damit die Aufschlüsselung vollständig ist.
func (s *ReportService) GetDepartmentTotalTime(ctx context.Context, actor entity.Actor, departmentID string, q report_dto.WindowQuery) (*report_dto.DepartmentReport, *app_errors.AppError) {
	if !permission.Has(actor.Role, permission.ReportViewDepartment) {
		return nil, app_errors.NewForbidden("forbidden")
	}

	now := s.now()
	w, err := time_entry_case.ResolveWindow(q.Period, q.From, q.To, now, s.loc, s.maxDays)
	if err != nil {
		return nil, err
	}

	dept, err := s.users.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	members, err := s.users.ListDepartmentUsers(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListOverlapping(ctx, entity.TimeEntryFilter{
		DepartmentID: &departmentID,
		From:         w.From,
		To:           w.To,
		IncludeOpen:  q.IncludeOpen,
	})
	if err != nil {
		return nil, err
	}

	totals := time_entry_case.GroupByUser(entries, w, now)
	for _, m := range members {
		if _, ok := totals[m.ID]; !ok {
			totals[m.ID] = &report_dto.UserTotal{UserID: m.ID, UserName: m.Name}
		}
	}
	byUser, total, count := time_entry_case.SortedUserTotals(totals)

	return &report_dto.DepartmentReport{
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
		From:           w.From,
		To:             w.To,
		TotalSeconds:   total,
		Total:          utils.FormatDuration(total),
		EntryCount:     count,
		ByUser:         byUser,
	}, nil
}

// GetFileWorkerBreakdown ohne Fenster zählt die gesamte Historie der Mappe bis jetzt.
func (s *ReportService) GetFileWorkerBreakdown(ctx context.Context, actor entity.Actor, fileID string, q report_dto.FileBreakdownQuery) (*report_dto.FileReport, *app_errors.AppError) {
	if !permission.Has(actor.Role, permission.ReportViewFile) {
		return nil, app_errors.NewForbidden("forbidden")
	}

	now := s.now()
	var w utils.Window
	bounded := q.Period != "" || q.From != "" || q.To != ""
	if bounded {
		resolved, err := time_entry_case.ResolveWindow(q.Period, q.From, q.To, now, s.loc, s.maxDays)
		if err != nil {
			return nil, err
		}
		w = resolved
	} else {
		w = utils.Window{From: time.Unix(0, 0).UTC(), To: now.Add(time.Second)}
	}

	file, err := s.files.GetFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListOverlapping(ctx, entity.TimeEntryFilter{
		FileID:      &fileID,
		From:        w.From,
		To:          w.To,
		IncludeOpen: q.IncludeOpen,
	})
	if err != nil {
		return nil, err
	}

	byUser, total, count := time_entry_case.SortedUserTotals(time_entry_case.GroupByUser(entries, w, now))

	resp := &report_dto.FileReport{
		FileID:       file.ID,
		FileNo:       file.FileNo,
		TotalSeconds: total,
		Total:        utils.FormatDuration(total),
		EntryCount:   count,
		ByUser:       byUser,
	}
	if bounded {
		resp.From = &w.From
		resp.To = &w.To
	}
	return resp, nil
}
