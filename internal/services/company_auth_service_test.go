package services_test

import (
	"context"
	"testing"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories/repotest"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provisionUser(t *testing.T, userRepo *repotest.UserRepo, externalID string) *models.User {
	t.Helper()
	user, err := services.NewUserService(userRepo).ResolveByExternalID(context.Background(), externalID)
	require.NoError(t, err)
	return user
}

func newAuthFixture(t *testing.T) (services.CompanyAuthService, *repotest.CompanyRepo) {
	t.Helper()
	companyRepo := repotest.NewCompanyRepo()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)
	tokens := auth.NewTokenIssuer("test-secret", 60)
	return services.NewCompanyAuthService(companyRepo, tokens, store), companyRepo
}

func registerRequest() *dto.RegisterCompanyRequest {
	return &dto.RegisterCompanyRequest{
		Name:     "Acme Corp",
		Email:    "hr@acme.test",
		Password: "supersecret",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Acme Corp", resp.Company.Name)
	assert.Equal(t, models.PlaceholderImage, resp.Company.Image)

	company, err := svc.Verify(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Company.ID, company.ID)
}

func TestRegisterStoresLogo(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), registerRequest(), &services.UploadedFile{
		Data:        []byte("PNGDATA"),
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Company.Image, "company_profiles/")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest(), nil)
	assert.ErrorIs(t, err, apperrors.ErrCompanyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginCompanyRequest{
		Email:    "hr@acme.test",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginCompanyRequest{
		Email:    "nobody@acme.test",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginReturnsFreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	reg, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), &dto.LoginCompanyRequest{
		Email:    "hr@acme.test",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.Company.ID, login.Company.ID)
	assert.NotEmpty(t, login.Token)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	foreign := auth.NewTokenIssuer("other-secret", 60)
	token, err := foreign.Generate("company-123")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
}

func TestVerifyDeletedCompany(t *testing.T) {
	svc, companyRepo := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	companyRepo.Delete(resp.Company.ID)

	_, err = svc.Verify(context.Background(), resp.Token)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}
