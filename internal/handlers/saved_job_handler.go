package handlers

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// SavedJobHandler exposes the saved-job toggle registry.
type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

// Toggle handles POST /api/users/saved-jobs/save-job. The response message
// always reflects the persisted state after the call.
func (h *SavedJobHandler) Toggle(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.ToggleSaveRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	state, _, err := h.savedJobService.Toggle(c.Request.Context(), user.ExternalID, req.JobID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if state == services.StateSaved {
		h.Message(c, http.StatusOK, "Job saved")
		return
	}
	h.Message(c, http.StatusOK, "Job unsaved")
}

// List handles GET /api/users/saved-jobs/saved-jobs/list.
func (h *SavedJobHandler) List(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	saved, err := h.savedJobService.List(c.Request.Context(), user.ExternalID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"savedJobs": saved})
}
