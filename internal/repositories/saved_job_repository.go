package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAlreadySaved = errors.New("job already saved")

type SavedJobRepository interface {
	// Create inserts a membership row. ErrAlreadySaved is returned when the
	// (user_id, job_id) unique index rejects the insert.
	Create(ctx context.Context, saved *models.SavedJob) error

	// DeleteByUserAndJob removes the membership row if it exists and reports
	// how many rows were deleted. Zero is not an error: a concurrent toggle
	// may have removed it first.
	DeleteByUserAndJob(ctx context.Context, userID, jobID string) (int64, error)

	ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Create(ctx context.Context, saved *models.SavedJob) error {
	err := r.db.WithContext(ctx).Create(saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *SavedJobRepositoryImpl) DeleteByUserAndJob(ctx context.Context, userID, jobID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{})
	return result.RowsAffected, result.Error
}

func (r *SavedJobRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
