package work_session_dto

import (
	"time"

	time_entry_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/time-entry-dto"
)

type WorkSessionResponse struct {
	UserID         string    `json:"user_id"`
	CurrentFileID  string    `json:"current_file_id"`
	CurrentEntryID string    `json:"current_entry_id"`
	StartedAt      time.Time `json:"started_at"`
	SwitchedAt     time.Time `json:"switched_at"`
}

// ChangeFileResponse enthält den geschlossenen und den neu geöffneten Eintrag.
type ChangeFileResponse struct {
	Session     WorkSessionResponse               `json:"session"`
	ClosedEntry *time_entry_dto.TimeEntryResponse `json:"closed_entry,omitempty"`
}

type StopWorkResponse struct {
	UserID      string                            `json:"user_id"`
	ClosedEntry *time_entry_dto.TimeEntryResponse `json:"closed_entry"`
}

type ActiveSessionItem struct {
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	DepartmentID   string    `json:"department_id"`
	CurrentFileID  string    `json:"current_file_id"`
	FileNo         string    `json:"file_no"`
	StartedAt      time.Time `json:"started_at"`
	EntryStartedAt time.Time `json:"entry_started_at"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
	Elapsed        string    `json:"elapsed"`
}
