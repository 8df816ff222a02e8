package dto

type ApplyJobRequest struct {
	JobID string `json:"jobId" validate:"required"`
}

type UpdateStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=Accepted Rejected"`
}
