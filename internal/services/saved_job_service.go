package services

import (
	"context"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// SaveState is the outcome of a toggle, always matching what is persisted.
type SaveState string

const (
	StateSaved   SaveState = "saved"
	StateUnsaved SaveState = "unsaved"
)

// SavedJobService owns saved-job membership: at most one record per
// (user, job), toggled idempotently.
type SavedJobService interface {
	Toggle(ctx context.Context, userExternalID, jobID string) (SaveState, *models.SavedJob, error)
	List(ctx context.Context, userExternalID string) ([]models.SavedJob, error)
}

type SavedJobServiceImpl struct {
	savedRepo repositories.SavedJobRepository
	jobRepo   repositories.JobRepository
}

func NewSavedJobService(savedRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) SavedJobService {
	return &SavedJobServiceImpl{
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
	}
}

func (s *SavedJobServiceImpl) Toggle(ctx context.Context, userExternalID, jobID string) (SaveState, *models.SavedJob, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return "", nil, apperrors.ErrInvalidJobID
	}

	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return "", nil, apperrors.ErrJobNotFound
		}
		return "", nil, apperrors.InternalError(err)
	}

	// Delete-if-exists first: each half of the toggle is individually
	// atomic against the (user_id, job_id) unique index.
	rows, err := s.savedRepo.DeleteByUserAndJob(ctx, userExternalID, jobID)
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}
	if rows > 0 {
		return StateUnsaved, nil, nil
	}

	saved := &models.SavedJob{
		UserID: userExternalID,
		JobID:  jobID,
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadySaved) {
			// A concurrent toggle created the row first; the persisted
			// state is "saved", so report that rather than an error.
			return StateSaved, nil, nil
		}
		return "", nil, apperrors.InternalError(err)
	}

	return StateSaved, saved, nil
}

func (s *SavedJobServiceImpl) List(ctx context.Context, userExternalID string) ([]models.SavedJob, error) {
	saved, err := s.savedRepo.ListByUser(ctx, userExternalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i := range saved {
		if saved[i].Job != nil && saved[i].Job.Company != nil {
			saved[i].Job.Company.PasswordHash = ""
		}
	}
	return saved, nil
}
