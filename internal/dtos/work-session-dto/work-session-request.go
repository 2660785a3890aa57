package work_session_dto

type StartWorkRequest struct {
	FileID string `json:"file_id" validate:"required,uuid"`
}

type ChangeFileRequest struct {
	FileID string `json:"file_id" validate:"required,uuid"`
}
