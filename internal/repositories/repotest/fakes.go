// Package repotest provides in-memory repository implementations for tests
// that exercise service and handler behavior without a live database. The
// fakes enforce the same uniqueness rules as the real schema so concurrency
// guards can be tested.
package repotest

import (
	"context"
	"sort"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

type CompanyRepo struct {
	mu        sync.Mutex
	companies map[string]models.Company
}

func NewCompanyRepo() *CompanyRepo {
	return &CompanyRepo{companies: make(map[string]models.Company)}
}

func (r *CompanyRepo) Create(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Email == company.Email {
			return repositories.ErrCompanyExists
		}
	}
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	r.companies[company.ID] = *company
	return nil
}

func (r *CompanyRepo) FindByID(_ context.Context, id string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	return &c, nil
}

func (r *CompanyRepo) FindByEmail(_ context.Context, email string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *CompanyRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
}

type UserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ExternalID == user.ExternalID {
			return repositories.ErrUserExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepo) FindByExternalID(_ context.Context, externalID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ExternalID == externalID {
			cp := u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *UserRepo) UpdateProfile(_ context.Context, externalID, name, email, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.ExternalID == externalID {
			u.Name = name
			u.Email = email
			u.Image = image
			r.users[id] = u
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *UserRepo) UpdateResume(_ context.Context, userID, resumeURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Resume = resumeURL
	r.users[userID] = u
	return nil
}

type JobRepo struct {
	mu   sync.Mutex
	jobs map[string]models.Job
}

func NewJobRepo() *JobRepo {
	return &JobRepo{jobs: make(map[string]models.Job)}
}

func (r *JobRepo) Create(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *JobRepo) FindByID(_ context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return &j, nil
}

func (r *JobRepo) FindByIDWithCompany(ctx context.Context, id string) (*models.Job, error) {
	return r.FindByID(ctx, id)
}

func (r *JobRepo) ListVisible(_ context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.Visible {
			out = append(out, j)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *JobRepo) ListAll(_ context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		out = append(out, j)
	}
	sortJobs(out)
	return out, nil
}

func (r *JobRepo) ListByCompany(_ context.Context, companyID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *JobRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.jobs)), nil
}

func (r *JobRepo) UpdateVisibility(_ context.Context, jobID string, visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Visible = visible
	r.jobs[jobID] = j
	return nil
}

func sortJobs(jobs []models.Job) {
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].ID < jobs[k].ID })
}

type ApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]models.JobApplication
}

func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{apps: make(map[string]models.JobApplication)}
}

func (r *ApplicationRepo) Create(_ context.Context, app *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.UserID == app.UserID && a.JobID == app.JobID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *ApplicationRepo) FindByID(_ context.Context, id string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return &a, nil
}

func (r *ApplicationRepo) FindByUserAndJob(_ context.Context, userID, jobID string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.UserID == userID && a.JobID == jobID {
			cp := a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *ApplicationRepo) ListByUser(_ context.Context, userID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobApplication
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ApplicationRepo) ListByCompany(_ context.Context, companyID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobApplication
	for _, a := range r.apps {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ApplicationRepo) UpdateStatusIfPending(_ context.Context, id string, status models.ApplicationStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok || a.Status != models.ApplicationStatusPending {
		return 0, nil
	}
	a.Status = status
	r.apps[id] = a
	return 1, nil
}

func (r *ApplicationRepo) CountByJobIDs(_ context.Context, jobIDs []string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64, len(jobIDs))
	for _, id := range jobIDs {
		for _, a := range r.apps {
			if a.JobID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

type SavedJobRepo struct {
	mu    sync.Mutex
	saved map[string]models.SavedJob
}

func NewSavedJobRepo() *SavedJobRepo {
	return &SavedJobRepo{saved: make(map[string]models.SavedJob)}
}

func (r *SavedJobRepo) Create(_ context.Context, s *models.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.saved {
		if existing.UserID == s.UserID && existing.JobID == s.JobID {
			return repositories.ErrAlreadySaved
		}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.saved[s.ID] = *s
	return nil
}

func (r *SavedJobRepo) DeleteByUserAndJob(_ context.Context, userID, jobID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, s := range r.saved {
		if s.UserID == userID && s.JobID == jobID {
			delete(r.saved, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *SavedJobRepo) ListByUser(_ context.Context, userID string) ([]models.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SavedJob
	for _, s := range r.saved {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// Count reports how many saved rows exist for (user, job). Used by toggle
// invariant assertions.
func (r *SavedJobRepo) Count(userID, jobID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.saved {
		if s.UserID == userID && s.JobID == jobID {
			n++
		}
	}
	return n
}
