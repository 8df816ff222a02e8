package services

import (
	"context"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

// UserService resolves user principals. Resolution never fails with
// "not found": any first authenticated contact provisions the account.
type UserService interface {
	// ResolveByExternalID is the lazy get-or-create path behind the user
	// auth middleware.
	ResolveByExternalID(ctx context.Context, externalID string) (*models.User, error)

	// Sync is the explicit upsert pushed by the identity collaborator. It
	// overwrites profile fields only and never fails on an existing row.
	Sync(ctx context.Context, req *dto.SyncUserRequest) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ResolveByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	user, err := s.userRepo.FindByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user = &models.User{
		ExternalID: externalID,
		Name:       models.PlaceholderName,
		Email:      models.PlaceholderEmail,
		Image:      models.PlaceholderImage,
		Resume:     "",
	}

	err = s.userRepo.Create(ctx, user)
	if err == nil {
		logger.CtxInfo(ctx, "provisioned user on first contact", "external_id", externalID)
		return user, nil
	}
	if apperrors.Is(err, repositories.ErrUserExists) {
		// Lost the provisioning race; the winner's row is the account.
		return s.userRepo.FindByExternalID(ctx, externalID)
	}
	return nil, apperrors.InternalError(err)
}

func (s *UserServiceImpl) Sync(ctx context.Context, req *dto.SyncUserRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByExternalID(ctx, req.ExternalID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		return s.createFromSync(ctx, req)
	}

	name := req.Name
	if name == "" {
		name = existing.Name
	}
	email := req.Email
	if email == "" {
		email = existing.Email
	}
	image := req.Image
	if image == "" {
		image = existing.Image
	}

	if err := s.userRepo.UpdateProfile(ctx, req.ExternalID, name, email, image); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Row vanished between lookup and update; recreate.
			return s.createFromSync(ctx, req)
		}
		return nil, apperrors.InternalError(err)
	}

	existing.Name = name
	existing.Email = email
	existing.Image = image
	return existing, nil
}

func (s *UserServiceImpl) createFromSync(ctx context.Context, req *dto.SyncUserRequest) (*models.User, error) {
	user := &models.User{
		ExternalID: req.ExternalID,
		Name:       orPlaceholder(req.Name, models.PlaceholderName),
		Email:      orPlaceholder(req.Email, models.PlaceholderEmail),
		Image:      orPlaceholder(req.Image, models.PlaceholderImage),
		Resume:     "",
	}

	err := s.userRepo.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if apperrors.Is(err, repositories.ErrUserExists) {
		// Raced the lazy-provisioning path; retry the upsert on the
		// now-existing row.
		return s.Sync(ctx, req)
	}
	return nil, apperrors.InternalError(err)
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
