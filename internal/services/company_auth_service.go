package services

import (
	"bytes"
	"context"
	"fmt"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"

	"github.com/google/uuid"
)

// UploadedFile is an in-memory file received from a multipart request.
type UploadedFile struct {
	Data        []byte
	ContentType string
}

// CompanyAuthService owns the company principal: registration, login and
// per-request credential verification against the server-held secret.
type CompanyAuthService interface {
	Register(ctx context.Context, req *dto.RegisterCompanyRequest, logo *UploadedFile) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginCompanyRequest) (*dto.AuthResponse, error)

	// Verify decodes and checks the self-issued credential and resolves it
	// to a Company. Verification failure is terminal for the request.
	Verify(ctx context.Context, rawToken string) (*models.Company, error)
}

type CompanyAuthServiceImpl struct {
	companyRepo repositories.CompanyRepository
	tokens      *auth.TokenIssuer
	store       storage.Storage
}

func NewCompanyAuthService(
	companyRepo repositories.CompanyRepository,
	tokens *auth.TokenIssuer,
	store storage.Storage,
) CompanyAuthService {
	return &CompanyAuthServiceImpl{
		companyRepo: companyRepo,
		tokens:      tokens,
		store:       store,
	}
}

func (s *CompanyAuthServiceImpl) Register(ctx context.Context, req *dto.RegisterCompanyRequest, logo *UploadedFile) (*dto.AuthResponse, error) {
	if _, err := s.companyRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrCompanyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	imageURL := models.PlaceholderImage
	if logo != nil {
		imageURL, err = s.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
	}

	company := &models.Company{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Image:        imageURL,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyExists) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(company)
}

func (s *CompanyAuthServiceImpl) Login(ctx context.Context, req *dto.LoginCompanyRequest) (*dto.AuthResponse, error) {
	company, err := s.companyRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, company.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(company)
}

func (s *CompanyAuthServiceImpl) Verify(ctx context.Context, rawToken string) (*models.Company, error) {
	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		if apperrors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrCredentialExpired
		}
		return nil, apperrors.ErrInvalidCredential
	}

	company, err := s.companyRepo.FindByID(ctx, claims.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			// Company deleted after token issuance
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return company, nil
}

func (s *CompanyAuthServiceImpl) uploadLogo(ctx context.Context, logo *UploadedFile) (string, error) {
	path := fmt.Sprintf("company_profiles/%s", uuid.NewString())
	if err := s.store.Save(ctx, path, bytes.NewReader(logo.Data), logo.ContentType); err != nil {
		return "", apperrors.UploadFailed(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.UploadFailed(err)
	}
	return url, nil
}

func (s *CompanyAuthServiceImpl) buildAuthResponse(company *models.Company) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Company: dto.CompanyResponse{
			ID:    company.ID,
			Name:  company.Name,
			Email: company.Email,
			Image: company.Image,
		},
		Token: token,
	}, nil
}
