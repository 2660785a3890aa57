package entity

import "time"

// FileEventEntity ist ein unveränderlicher Eintrag im Audit-Trail einer Mappe.
type FileEventEntity struct {
	ID           string      `json:"id"`
	FileID       string      `json:"file_id"`
	ActorID      string      `json:"actor_id"`
	TargetUserID *string     `json:"target_user_id,omitempty"`
	Action       FileAction  `json:"action"`
	FromStage    *FileStage  `json:"from_stage,omitempty"`
	ToStage      *FileStage  `json:"to_stage,omitempty"`
	FromStatus   *FileStatus `json:"from_status,omitempty"`
	ToStatus     *FileStatus `json:"to_status,omitempty"`
	Note         *string     `json:"note,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

type FileAction string

const (
	ActionAssign           FileAction = "ASSIGN"
	ActionTransferToRepro  FileAction = "TRANSFER_TO_REPRO"
	ActionSendToProduction FileAction = "SEND_TO_PRODUCTION"
)
