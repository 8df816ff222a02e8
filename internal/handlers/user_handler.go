package handlers

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const maxResumeSize = 5 * 1024 * 1024

// UserHandler exposes the user-facing surface: provisioning, profile data,
// applications and resume replacement.
type UserHandler struct {
	*BaseHandler
	userService        services.UserService
	applicationService services.ApplicationService
	resumeService      services.ResumeService
}

func NewUserHandler(
	base *BaseHandler,
	userService services.UserService,
	applicationService services.ApplicationService,
	resumeService services.ResumeService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:        base,
		userService:        userService,
		applicationService: applicationService,
		resumeService:      resumeService,
	}
}

// Sync handles POST /api/users/sync, the trusted provisioning callback from
// the identity collaborator.
func (h *UserHandler) Sync(c *gin.Context) {
	var req dto.SyncUserRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	user, err := h.userService.Sync(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"user": user})
}

// GetData handles GET /api/users/data.
func (h *UserHandler) GetData(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"user": user})
}

// ListApplications handles GET /api/users/applications.
func (h *UserHandler) ListApplications(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	apps, err := h.applicationService.ListForUser(c.Request.Context(), user)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"applications": apps})
}

// ApplyJob handles POST /api/users/apply-job.
func (h *UserHandler) ApplyJob(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.ApplyJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), user, req.JobID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, gin.H{"message": "Applied Successfully", "application": app})
}

// UpdateResume handles POST /api/users/update-resume (multipart, `resume`
// field, PDF only).
func (h *UserHandler) UpdateResume(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	file, err := h.ReadFormFile(c, "resume", maxResumeSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	updated, err := h.resumeService.Replace(c.Request.Context(), user, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"message": "Resume Updated", "user": updated})
}
