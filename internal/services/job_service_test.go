package services_test

import (
	"context"
	"testing"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories/repotest"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture(t *testing.T) (services.JobService, *repotest.JobRepo, *repotest.ApplicationRepo) {
	t.Helper()
	jobRepo := repotest.NewJobRepo()
	appRepo := repotest.NewApplicationRepo()
	return services.NewJobService(jobRepo, appRepo), jobRepo, appRepo
}

func TestCreateJobIsVisibleByDefault(t *testing.T) {
	svc, _, _ := newJobFixture(t)
	company := &models.Company{BaseModel: models.BaseModel{ID: uuid.NewString()}}

	job, err := svc.Create(context.Background(), company, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Almaty",
		Salary:      "500000",
		Level:       "Middle",
		Category:    "Engineering",
	})
	require.NoError(t, err)
	assert.True(t, job.Visible)
	assert.Equal(t, company.ID, job.CompanyID)
}

func TestListVisibleExcludesHiddenJobs(t *testing.T) {
	svc, jobRepo, _ := newJobFixture(t)
	companyID := uuid.NewString()

	visible := seedJob(t, jobRepo, companyID)
	hidden := seedJob(t, jobRepo, companyID)
	require.NoError(t, jobRepo.UpdateVisibility(context.Background(), hidden.ID, false))

	jobs, err := svc.ListVisible(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		assert.True(t, j.Visible)
		ids = append(ids, j.ID)
	}
	assert.Contains(t, ids, visible.ID)
	assert.NotContains(t, ids, hidden.ID)
}

func TestGetByIDReturnsHiddenJob(t *testing.T) {
	svc, jobRepo, _ := newJobFixture(t)
	job := seedJob(t, jobRepo, uuid.NewString())
	require.NoError(t, jobRepo.UpdateVisibility(context.Background(), job.ID, false))

	got, err := svc.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.False(t, got.Visible)
}

func TestGetByIDMalformed(t *testing.T) {
	svc, _, _ := newJobFixture(t)

	_, err := svc.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, apperrors.ErrInvalidJobID)
}

func TestCount(t *testing.T) {
	svc, jobRepo, _ := newJobFixture(t)
	seedJob(t, jobRepo, uuid.NewString())
	seedJob(t, jobRepo, uuid.NewString())

	total, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestListForCompanyCountsApplicants(t *testing.T) {
	svc, jobRepo, appRepo := newJobFixture(t)
	companyID := uuid.NewString()
	company := &models.Company{BaseModel: models.BaseModel{ID: companyID}}

	job := seedJob(t, jobRepo, companyID)
	seedJob(t, jobRepo, uuid.NewString()) // another company's job

	for i := 0; i < 3; i++ {
		require.NoError(t, appRepo.Create(context.Background(), &models.JobApplication{
			UserID:    uuid.NewString(),
			JobID:     job.ID,
			CompanyID: companyID,
			Status:    models.ApplicationStatusPending,
		}))
	}

	jobs, err := svc.ListForCompany(context.Background(), company)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
	assert.Equal(t, int64(3), jobs[0].Applicants)
}

func TestToggleVisibilityFlipsFlag(t *testing.T) {
	svc, jobRepo, _ := newJobFixture(t)
	companyID := uuid.NewString()
	company := &models.Company{BaseModel: models.BaseModel{ID: companyID}}
	job := seedJob(t, jobRepo, companyID)

	toggled, err := svc.ToggleVisibility(context.Background(), company, job.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Visible)

	toggled, err = svc.ToggleVisibility(context.Background(), company, job.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Visible)
}

func TestToggleVisibilityNonOwnerForbidden(t *testing.T) {
	svc, jobRepo, _ := newJobFixture(t)
	job := seedJob(t, jobRepo, uuid.NewString())
	stranger := &models.Company{BaseModel: models.BaseModel{ID: uuid.NewString()}}

	_, err := svc.ToggleVisibility(context.Background(), stranger, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	stored, err := jobRepo.FindByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.True(t, stored.Visible)
}

func TestToggleVisibilityUnknownJob(t *testing.T) {
	svc, _, _ := newJobFixture(t)
	company := &models.Company{BaseModel: models.BaseModel{ID: uuid.NewString()}}

	_, err := svc.ToggleVisibility(context.Background(), company, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}
