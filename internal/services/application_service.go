package services

import (
	"context"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// ApplicationService owns the job-application state machine:
// Pending is initial, Accepted and Rejected are terminal.
type ApplicationService interface {
	Apply(ctx context.Context, user *models.User, jobID string) (*models.JobApplication, error)
	ListForUser(ctx context.Context, user *models.User) ([]models.JobApplication, error)
	ListForCompany(ctx context.Context, company *models.Company) ([]models.JobApplication, error)
	TransitionStatus(ctx context.Context, company *models.Company, applicationID string, status models.ApplicationStatus) error
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, user *models.User, jobID string) (*models.JobApplication, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Friendly pre-check; the unique index below is authoritative.
	if _, err := s.appRepo.FindByUserAndJob(ctx, user.ID, job.ID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.JobApplication{
		UserID:    user.ID,
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		Status:    models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			// A concurrent apply won the insert.
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application created", "application_id", app.ID, "job_id", job.ID)
	return app, nil
}

func (s *ApplicationServiceImpl) ListForUser(ctx context.Context, user *models.User) ([]models.JobApplication, error) {
	apps, err := s.appRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	scrubCompanies(apps)
	return apps, nil
}

func (s *ApplicationServiceImpl) ListForCompany(ctx context.Context, company *models.Company) ([]models.JobApplication, error) {
	apps, err := s.appRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) TransitionStatus(ctx context.Context, company *models.Company, applicationID string, status models.ApplicationStatus) error {
	if !status.IsDecision() {
		return apperrors.ErrInvalidStatusValue
	}

	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	if app.CompanyID != company.ID {
		return apperrors.ErrForbidden
	}

	// Atomic check-then-set: the WHERE clause carries the precondition, so
	// two concurrent decisions cannot both succeed.
	rows, err := s.appRepo.UpdateStatusIfPending(ctx, applicationID, status)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.ErrStatusFinalized
	}

	logger.CtxInfo(ctx, "application status updated", "application_id", applicationID, "status", status)
	return nil
}

// scrubCompanies drops credential material from joined company rows.
func scrubCompanies(apps []models.JobApplication) {
	for i := range apps {
		if apps[i].Company != nil {
			apps[i].Company.PasswordHash = ""
		}
	}
}
