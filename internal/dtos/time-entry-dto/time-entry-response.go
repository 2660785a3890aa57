package time_entry_dto

import "time"

type TimeEntryResponse struct {
	EntryID         string     `json:"entry_id"`
	UserID          string     `json:"user_id"`
	FileID          string     `json:"file_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds int64      `json:"duration_seconds"`
	Note            *string    `json:"note,omitempty"`
}
