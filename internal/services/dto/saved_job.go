package dto

type ToggleSaveRequest struct {
	JobID string `json:"jobId" validate:"required"`
}
