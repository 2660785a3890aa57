package entity

import "time"

// WorkSessionEntity zeigt auf die Mappe, an der ein Benutzer gerade arbeitet.
// Sie ist nur aktiv, solange CurrentEntryID auf einen offenen TimeEntry zeigt.
type WorkSessionEntity struct {
	UserID         string    `json:"user_id"`
	CurrentFileID  string    `json:"current_file_id"`
	CurrentEntryID string    `json:"current_entry_id"`
	StartedAt      time.Time `json:"started_at"`
	SwitchedAt     time.Time `json:"switched_at"`
}

// ActiveSessionView ist die Admin-Projektion aller aktiven Sitzungen.
type ActiveSessionView struct {
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	DepartmentID   string    `json:"department_id"`
	CurrentFileID  string    `json:"current_file_id"`
	FileNo         string    `json:"file_no"`
	StartedAt      time.Time `json:"started_at"`
	EntryStartedAt time.Time `json:"entry_started_at"`
}
