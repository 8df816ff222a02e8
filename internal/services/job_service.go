package services

import (
	"context"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

// JobService owns the job catalog. The core authorization invariant:
// a company may only mutate jobs it created.
type JobService interface {
	Create(ctx context.Context, company *models.Company, req *dto.CreateJobRequest) (*models.Job, error)
	ListVisible(ctx context.Context) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Count(ctx context.Context) (int64, error)
	ListForCompany(ctx context.Context, company *models.Company) ([]models.JobWithApplicants, error)
	ToggleVisibility(ctx context.Context, company *models.Company, jobID string) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	appRepo repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, appRepo repositories.ApplicationRepository) JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
		appRepo: appRepo,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, company *models.Company, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		CompanyID:   company.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Level:       req.Level,
		Category:    req.Category,
		Visible:     true,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job posted", "job_id", job.ID, "company_id", company.ID)
	return job, nil
}

func (s *JobServiceImpl) ListVisible(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListVisible(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (*models.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByIDWithCompany(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// The join is for display only; never ship credential material.
	if job.Company != nil {
		job.Company.PasswordHash = ""
	}
	return job, nil
}

func (s *JobServiceImpl) Count(ctx context.Context) (int64, error) {
	count, err := s.jobRepo.Count(ctx)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *JobServiceImpl) ListForCompany(ctx context.Context, company *models.Company) ([]models.JobWithApplicants, error) {
	jobs, err := s.jobRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobIDs := make([]string, len(jobs))
	for i, job := range jobs {
		jobIDs[i] = job.ID
	}

	counts, err := s.appRepo.CountByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]models.JobWithApplicants, len(jobs))
	for i, job := range jobs {
		result[i] = models.JobWithApplicants{
			Job:        job,
			Applicants: counts[job.ID],
		}
	}
	return result, nil
}

func (s *JobServiceImpl) ToggleVisibility(ctx context.Context, company *models.Company, jobID string) (*models.Job, error) {
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

	if job.CompanyID != company.ID {
		return nil, apperrors.ErrNotJobOwner
	}

	job.Visible = !job.Visible
	if err := s.jobRepo.UpdateVisibility(ctx, job.ID, job.Visible); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job visibility toggled", "job_id", job.ID, "visible", job.Visible)
	return job, nil
}
