package report_dto

import "time"

type FileTotal struct {
	FileID       string `json:"file_id"`
	TotalSeconds int64  `json:"total_seconds"`
	Total        string `json:"total"`
	EntryCount   int    `json:"entry_count"`
}

type DayTotal struct {
	Day          string `json:"day"` // YYYY-MM-DD in der konfigurierten Zeitzone
	TotalSeconds int64  `json:"total_seconds"`
	Total        string `json:"total"`
}

type UserTotal struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	TotalSeconds int64  `json:"total_seconds"`
	Total        string `json:"total"`
	EntryCount   int    `json:"entry_count"`
}

// TimeSummary ist die Zusammenfassung der Einträge eines Benutzers in einem Fenster.
type TimeSummary struct {
	From         time.Time   `json:"from"`
	To           time.Time   `json:"to"`
	TotalSeconds int64       `json:"total_seconds"`
	Total        string      `json:"total"`
	OpenSeconds  int64       `json:"open_seconds"`
	EntryCount   int         `json:"entry_count"`
	ByFile       []FileTotal `json:"by_file"`
	ByDay        []DayTotal  `json:"by_day"`
}

type WorkerReport struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	TimeSummary
}

type DepartmentReport struct {
	DepartmentID   string      `json:"department_id"`
	DepartmentName string      `json:"department_name"`
	From           time.Time   `json:"from"`
	To             time.Time   `json:"to"`
	TotalSeconds   int64       `json:"total_seconds"`
	Total          string      `json:"total"`
	EntryCount     int         `json:"entry_count"`
	ByUser         []UserTotal `json:"by_user"`
}

type FileReport struct {
	FileID       string      `json:"file_id"`
	FileNo       string      `json:"file_no"`
	From         *time.Time  `json:"from,omitempty"`
	To           *time.Time  `json:"to,omitempty"`
	TotalSeconds int64       `json:"total_seconds"`
	Total        string      `json:"total"`
	EntryCount   int         `json:"entry_count"`
	ByUser       []UserTotal `json:"by_user"`
}
