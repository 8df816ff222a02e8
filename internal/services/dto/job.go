package dto

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Salary      string `json:"salary" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

type ChangeVisibilityRequest struct {
	ID string `json:"id" validate:"required"`
}
