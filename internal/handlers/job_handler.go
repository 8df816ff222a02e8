package handlers

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// JobHandler serves the public, unauthenticated job catalog.
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// ListVisible handles GET /api/jobs.
func (h *JobHandler) ListVisible(c *gin.Context) {
	jobs, err := h.jobService.ListVisible(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"jobs": jobs})
}

// ListAll handles GET /api/jobs/all, including hidden jobs.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"jobs": jobs})
}

// Count handles GET /api/jobs/count.
func (h *JobHandler) Count(c *gin.Context) {
	total, err := h.jobService.Count(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"total": total})
}

// GetByID handles GET /api/jobs/:id. Hidden jobs are still reachable by
// direct id, only listings filter on visibility.
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"job": job})
}
