package services

import (
	"bytes"
	"context"
	"fmt"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"

	"github.com/google/uuid"
)

const (
	resumeContentType = "application/pdf"
	maxResumeSize     = 5 * 1024 * 1024 // 5 MiB
)

// ResumeService coordinates resume replacement against the object-store
// collaborator. A failed upload must leave the user's prior resume pointer
// untouched; old blobs are the collaborator's lifecycle concern.
type ResumeService interface {
	Replace(ctx context.Context, user *models.User, file *UploadedFile) (*models.User, error)
}

type ResumeServiceImpl struct {
	userRepo repositories.UserRepository
	store    storage.Storage
}

func NewResumeService(userRepo repositories.UserRepository, store storage.Storage) ResumeService {
	return &ResumeServiceImpl{
		userRepo: userRepo,
		store:    store,
	}
}

func (s *ResumeServiceImpl) Replace(ctx context.Context, user *models.User, file *UploadedFile) (*models.User, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, apperrors.ErrResumeRequired
	}
	if file.ContentType != resumeContentType {
		return nil, apperrors.ErrResumeNotPDF
	}
	if int64(len(file.Data)) > maxResumeSize {
		return nil, apperrors.ErrResumeTooLarge
	}

	path := fmt.Sprintf("resumes/%s/%s.pdf", user.ID, uuid.NewString())

	if err := s.store.Save(ctx, path, bytes.NewReader(file.Data), resumeContentType); err != nil {
		return nil, apperrors.UploadFailed(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.UploadFailed(err)
	}

	if err := s.userRepo.UpdateResume(ctx, user.ID, url); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	updated := *user
	updated.Resume = url
	logger.CtxInfo(ctx, "resume replaced", "user_id", user.ID)
	return &updated, nil
}
