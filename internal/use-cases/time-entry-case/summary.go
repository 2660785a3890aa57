package time_entry_case

import (
	"cmp"
	"slices"
	"time"

	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
)

// ResolveWindow übersetzt period oder from/to in ein Fenster. Entweder period
// oder from/to muss gesetzt sein, nicht beides.
func ResolveWindow(period, from, to string, now time.Time, loc *time.Location, maxDays int) (utils.Window, *app_errors.AppError) {
	if period != "" && (from != "" || to != "") {
		return utils.Window{}, app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "period",
			Reason:     "excluded_with",
			MessageKey: "validation.period_or_range",
		}})
	}

	if period != "" {
		w, err := utils.ResolvePeriod(period, now, loc)
		if err != nil {
			return utils.Window{}, app_errors.NewValidationError([]app_errors.FieldError{{
				Field:      "period",
				Reason:     "period",
				MessageKey: "validation.period",
			}})
		}
		return w, nil
	}

	if from == "" || to == "" {
		return utils.Window{}, app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "period",
			Reason:     "required_without",
			MessageKey: "validation.required_without",
			Params:     map[string]any{"other": "from"},
		}})
	}

	fromT, fromErr := time.Parse(time.RFC3339, from)
	toT, toErr := time.Parse(time.RFC3339, to)
	if fromErr != nil || toErr != nil {
		field := "from"
		if fromErr == nil {
			field = "to"
		}
		return utils.Window{}, app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      field,
			Reason:     "datetime",
			MessageKey: "validation.datetime",
			Params:     map[string]any{"layout": "RFC3339"},
		}})
	}

	w := utils.Window{From: fromT, To: toT}
	if err := CheckWindow(w, maxDays); err != nil {
		return utils.Window{}, err
	}
	return w, nil
}

// CheckWindow prüft Reihenfolge und Maximallänge eines expliziten Fensters.
func CheckWindow(w utils.Window, maxDays int) *app_errors.AppError {
	if !w.From.Before(w.To) {
		return app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "to",
			Reason:     "gtfield",
			MessageKey: "validation.after",
			Params:     map[string]any{"other": "from"},
		}})
	}
	if maxDays > 0 && w.To.Sub(w.From) > time.Duration(maxDays)*24*time.Hour {
		return app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "to",
			Reason:     "max_days",
			MessageKey: "validation.window_too_large",
			Params:     map[string]any{"max": maxDays},
		}})
	}
	return nil
}

// clip liefert das auf w zugeschnittene Intervall in ganzen Unix-Sekunden.
// Offene Einträge laufen bis min(w.To, now). ok ist false, wenn nichts übrig bleibt.
func clip(e *entity.TimeEntryEntity, w utils.Window, now time.Time) (start, end int64, ok bool) {
	start = max(e.StartedAt.Unix(), w.From.Unix())

	stop := w.To
	if e.EndedAt != nil {
		if e.EndedAt.Before(stop) {
			stop = *e.EndedAt
		}
	} else if now.Before(stop) {
		stop = now
	}
	end = stop.Unix()

	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// ClippedSeconds ist die Dauer von e innerhalb von w.
func ClippedSeconds(e *entity.TimeEntryEntity, w utils.Window, now time.Time) int64 {
	start, end, ok := clip(e, w, now)
	if !ok {
		return 0
	}
	return end - start
}

// splitByDay verteilt [start, end) auf Kalendertage in loc.
func splitByDay(start, end int64, loc *time.Location, into map[string]int64) {
	for start < end {
		t := time.Unix(start, 0).In(loc)
		next := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc).Unix()
		stop := min(next, end)
		into[t.Format(time.DateOnly)] += stop - start
		start = stop
	}
}

// Summarize gruppiert die Einträge nach Mappe und Tag. Alle Summen werden
// in ganzen Sekunden gebildet, daher gilt Summe(ByFile) = Summe(ByDay) = Total.
func Summarize(entries []entity.ReportEntry, w utils.Window, now time.Time, loc *time.Location) report_dto.TimeSummary {
	if loc == nil {
		loc = time.UTC
	}

	byFile := map[string]*report_dto.FileTotal{}
	byDay := map[string]int64{}
	var total, open int64
	count := 0

	for i := range entries {
		e := &entries[i].TimeEntryEntity
		start, end, ok := clip(e, w, now)
		if !ok {
			continue
		}
		secs := end - start
		count++
		total += secs
		if e.IsOpen() {
			open += secs
		}

		ft, exists := byFile[e.FileID]
		if !exists {
			ft = &report_dto.FileTotal{FileID: e.FileID}
			byFile[e.FileID] = ft
		}
		ft.TotalSeconds += secs
		ft.EntryCount++

		splitByDay(start, end, loc, byDay)
	}

	files := make([]report_dto.FileTotal, 0, len(byFile))
	for _, ft := range byFile {
		ft.Total = utils.FormatDuration(ft.TotalSeconds)
		files = append(files, *ft)
	}
	slices.SortFunc(files, func(a, b report_dto.FileTotal) int {
		if c := cmp.Compare(b.TotalSeconds, a.TotalSeconds); c != 0 {
			return c
		}
		return cmp.Compare(a.FileID, b.FileID)
	})

	days := make([]report_dto.DayTotal, 0, len(byDay))
	for day, secs := range byDay {
		days = append(days, report_dto.DayTotal{Day: day, TotalSeconds: secs, Total: utils.FormatDuration(secs)})
	}
	slices.SortFunc(days, func(a, b report_dto.DayTotal) int {
		return cmp.Compare(a.Day, b.Day)
	})

	return report_dto.TimeSummary{
		From:         w.From,
		To:           w.To,
		TotalSeconds: total,
		Total:        utils.FormatDuration(total),
		OpenSeconds:  open,
		EntryCount:   count,
		ByFile:       files,
		ByDay:        days,
	}
}

// GroupByUser summiert die zugeschnittenen Einträge pro Benutzer.
// Jeder Eintrag gehört genau einem Benutzer, die Summe der Gruppen ist also die Gesamtsumme.
func GroupByUser(entries []entity.ReportEntry, w utils.Window, now time.Time) map[string]*report_dto.UserTotal {
	out := map[string]*report_dto.UserTotal{}
	for i := range entries {
		e := &entries[i]
		secs := ClippedSeconds(&e.TimeEntryEntity, w, now)
		if secs == 0 {
			continue
		}

		ut, ok := out[e.UserID]
		if !ok {
			ut = &report_dto.UserTotal{UserID: e.UserID, UserName: e.UserName}
			out[e.UserID] = ut
		}
		ut.TotalSeconds += secs
		ut.EntryCount++
	}
	return out
}

// SortedUserTotals formatiert und sortiert Benutzersummen nach Name, dann ID.
func SortedUserTotals(totals map[string]*report_dto.UserTotal) ([]report_dto.UserTotal, int64, int) {
	out := make([]report_dto.UserTotal, 0, len(totals))
	var total int64
	count := 0
	for _, ut := range totals {
		ut.Total = utils.FormatDuration(ut.TotalSeconds)
		total += ut.TotalSeconds
		count += ut.EntryCount
		out = append(out, *ut)
	}
	slices.SortFunc(out, func(a, b report_dto.UserTotal) int {
		if c := cmp.Compare(a.UserName, b.UserName); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	return out, total, count
}
