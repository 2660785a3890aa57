package time_entry_dto

type StartTimeEntryRequest struct {
	FileID string  `json:"file_id" validate:"required,uuid"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type StopTimeEntryRequest struct {
	FileID *string `json:"file_id,omitempty" validate:"omitempty,uuid"`
}
