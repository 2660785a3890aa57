package export

import (
	"strconv"
	"time"

	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	work_session_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/work-session-dto"
)

func WorkerSheets(r *report_dto.WorkerReport, loc *time.Location) []Sheet {
	summary := Sheet{
		Title:  "Worker " + r.UserName,
		Header: []string{"user_id", "name", "from", "to", "entries", "total", "open_seconds"},
		Rows: [][]string{{
			r.UserID, r.UserName, formatTime(r.From, loc), formatTime(r.To, loc),
			strconv.Itoa(r.EntryCount), r.Total, strconv.FormatInt(r.OpenSeconds, 10),
		}},
	}

	byFile := Sheet{Title: "By file", Header: []string{"file_id", "entries", "seconds", "total"}}
	for _, f := range r.ByFile {
		byFile.Rows = append(byFile.Rows, []string{f.FileID, strconv.Itoa(f.EntryCount), strconv.FormatInt(f.TotalSeconds, 10), f.Total})
	}

	byDay := Sheet{Title: "By day", Header: []string{"day", "seconds", "total"}}
	for _, d := range r.ByDay {
		byDay.Rows = append(byDay.Rows, []string{d.Day, strconv.FormatInt(d.TotalSeconds, 10), d.Total})
	}

	return []Sheet{summary, byFile, byDay}
}

func DepartmentSheets(r *report_dto.DepartmentReport, loc *time.Location) []Sheet {
	summary := Sheet{
		Title:  "Department " + r.DepartmentName,
		Header: []string{"department_id", "name", "from", "to", "entries", "total"},
		Rows: [][]string{{
			r.DepartmentID, r.DepartmentName, formatTime(r.From, loc), formatTime(r.To, loc),
			strconv.Itoa(r.EntryCount), r.Total,
		}},
	}
	return []Sheet{summary, userSheet(r.ByUser)}
}

func FileSheets(r *report_dto.FileReport, loc *time.Location) []Sheet {
	from, to := "", ""
	if r.From != nil {
		from = formatTime(*r.From, loc)
	}
	if r.To != nil {
		to = formatTime(*r.To, loc)
	}

	summary := Sheet{
		Title:  "File " + r.FileNo,
		Header: []string{"file_id", "file_no", "from", "to", "entries", "total"},
		Rows:   [][]string{{r.FileID, r.FileNo, from, to, strconv.Itoa(r.EntryCount), r.Total}},
	}
	return []Sheet{summary, userSheet(r.ByUser)}
}

func SessionSheet(items []*work_session_dto.ActiveSessionItem, loc *time.Location) Sheet {
	s := Sheet{
		Title:  "Active sessions",
		Header: []string{"user_id", "name", "file_no", "session_started", "entry_started", "elapsed"},
	}
	for _, it := range items {
		s.Rows = append(s.Rows, []string{
			it.UserID, it.UserName, it.FileNo,
			formatTime(it.StartedAt, loc), formatTime(it.EntryStartedAt, loc), it.Elapsed,
		})
	}
	return s
}

func userSheet(users []report_dto.UserTotal) Sheet {
	s := Sheet{Title: "By user", Header: []string{"user_id", "name", "entries", "seconds", "total"}}
	for _, u := range users {
		s.Rows = append(s.Rows, []string{u.UserID, u.UserName, strconv.Itoa(u.EntryCount), strconv.FormatInt(u.TotalSeconds, 10), u.Total})
	}
	return s
}
