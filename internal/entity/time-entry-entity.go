package entity

import "time"

// TimeEntryEntity ist ein einzelnes Arbeitsintervall eines Benutzers an einer Mappe.
// EndedAt ist nil, solange der Eintrag offen ist.
type TimeEntryEntity struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	FileID    string     `json:"file_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Note      *string    `json:"note,omitempty"`
}

func (e *TimeEntryEntity) IsOpen() bool {
	return e.EndedAt == nil
}

// TimeEntryFilter schränkt die Einträge für Berichte ein. Genau eines von UserID,
// DepartmentID oder FileID sollte gesetzt sein; From/To sind halb offen [From, To).
type TimeEntryFilter struct {
	UserID       *string
	DepartmentID *string
	FileID       *string
	From         time.Time
	To           time.Time
	IncludeOpen  bool
}

// LongRunningEntry ist ein offener Eintrag, der länger als die Schwelle läuft.
type LongRunningEntry struct {
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	FileID    string    `json:"file_id"`
	FileNo    string    `json:"file_no"`
	StartedAt time.Time `json:"started_at"`
}

// ReportEntry ist ein TimeEntry mit dem Namen des Benutzers für Berichte.
type ReportEntry struct {
	TimeEntryEntity
	UserName string `json:"user_name"`
}
