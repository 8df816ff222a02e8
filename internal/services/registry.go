package services

// ServiceContainer bundles the initialized services for handler wiring.
type ServiceContainer struct {
	CompanyAuthService CompanyAuthService
	UserService        UserService
	JobService         JobService
	ApplicationService ApplicationService
	SavedJobService    SavedJobService
	ResumeService      ResumeService
}
