package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles the initialized handlers for route registration.
type AppHandlers struct {
	Company  *CompanyHandler
	Job      *JobHandler
	User     *UserHandler
	SavedJob *SavedJobHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Company:  NewCompanyHandler(base, sc.CompanyAuthService, sc.JobService, sc.ApplicationService),
		Job:      NewJobHandler(base, sc.JobService),
		User:     NewUserHandler(base, sc.UserService, sc.ApplicationService, sc.ResumeService),
		SavedJob: NewSavedJobHandler(base, sc.SavedJobService),
	}
}
