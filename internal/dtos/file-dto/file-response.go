package file_dto

import "time"

type FileAssignmentResponse struct {
	FileID             string `json:"file_id"`
	Stage              string `json:"stage"`
	Status             string `json:"status"`
	AssignedDesignerID string `json:"assigned_designer_id"`
	EventID            string `json:"event_id"`
}

type SendToProductionResponse struct {
	FileID  string `json:"file_id"`
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

type FileItem struct {
	FileID             string     `json:"file_id"`
	FileNo             string     `json:"file_no"`
	CustomerName       string     `json:"customer_name"`
	Stage              string     `json:"stage"`
	Status             string     `json:"status"`
	AssignedDesignerID *string    `json:"assigned_designer_id,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

type FileEventItem struct {
	EventID      string    `json:"event_id"`
	ActorID      string    `json:"actor_id"`
	TargetUserID *string   `json:"target_user_id,omitempty"`
	Action       string    `json:"action"`
	FromStage    *string   `json:"from_stage,omitempty"`
	ToStage      *string   `json:"to_stage,omitempty"`
	FromStatus   *string   `json:"from_status,omitempty"`
	ToStatus     *string   `json:"to_status,omitempty"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
