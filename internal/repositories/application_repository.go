package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Create inserts the application. The (user_id, job_id) unique index is
	// the authoritative duplicate guard: a constraint violation surfaces as
	// ErrDuplicateApplication even when a pre-check passed.
	Create(ctx context.Context, app *models.JobApplication) error

	FindByID(ctx context.Context, id string) (*models.JobApplication, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.JobApplication, error)
	ListByUser(ctx context.Context, userID string) ([]models.JobApplication, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.JobApplication, error)

	// UpdateStatusIfPending performs the atomic conditional transition:
	// UPDATE ... SET status = ? WHERE id = ? AND status = 'Pending'.
	// Returns the number of rows affected; zero means the precondition did
	// not hold (row absent or already finalized).
	UpdateStatusIfPending(ctx context.Context, id string, status models.ApplicationStatus) (int64, error)

	// CountByJobIDs returns applicant counts per job in one grouped query.
	CountByJobIDs(ctx context.Context, jobIDs []string) (map[string]int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.JobApplication) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).
		First(&app, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Company").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("User").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id string, status models.ApplicationStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.JobApplication{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepositoryImpl) CountByJobIDs(ctx context.Context, jobIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	type jobCount struct {
		JobID string
		Count int64
	}

	var rows []jobCount
	err := r.db.WithContext(ctx).Model(&models.JobApplication{}).
		Select("job_id, COUNT(*) as count").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.JobID] = row.Count
	}
	return counts, nil
}
