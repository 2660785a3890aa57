package file_dto

type ParamFileID struct {
	ID string `params:"file_id" validate:"required,uuid"`
}

type AssignFileRequest struct {
	AssigneeID string  `json:"assignee_id" validate:"required,uuid"`
	Note       *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type TransferFileRequest struct {
	DesignerID string  `json:"designer_id" validate:"required,uuid"`
	Note       *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type SendToProductionRequest struct {
	Note *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// PoolQuery: ohne user_id liefert der Pool die eigenen Mappen.
type PoolQuery struct {
	UserID string `query:"user_id" validate:"omitempty,uuid"`
}
