package entity

import "time"

// FileEntity ist eine physische Auftragsmappe.
type FileEntity struct {
	ID                 string     `json:"id"`
	FileNo             string     `json:"file_no"`
	CustomerName       string     `json:"customer_name"`
	Stage              FileStage  `json:"stage"`
	Status             FileStatus `json:"status"`
	AssignedDesignerID *string    `json:"assigned_designer_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// PoolFile ist eine Zeile im persönlichen Pool eines Grafikers.
type PoolFile struct {
	ID           string     `json:"id"`
	FileNo       string     `json:"file_no"`
	CustomerName string     `json:"customer_name"`
	Stage        FileStage  `json:"stage"`
	Status       FileStatus `json:"status"`
	DesignerID   string     `json:"assigned_designer_id"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// FileAssignment ist das Ergebnis einer Zuweisung oder Übergabe.
type FileAssignment struct {
	ID                 string     `json:"id"`
	Stage              FileStage  `json:"stage"`
	Status             FileStatus `json:"status"`
	AssignedDesignerID string     `json:"assigned_designer_id"`
}

type FileStage string

const (
	StagePreRepro FileStage = "PRE_REPRO"
	StageRepro    FileStage = "REPRO"
)

type FileStatus string

const (
	StatusPending          FileStatus = "PENDING"
	StatusInProgress       FileStatus = "IN_PROGRESS"
	StatusOnHold           FileStatus = "ON_HOLD"
	StatusSentToProduction FileStatus = "SENT_TO_PRODUCTION"
)
