package handlers

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const maxLogoSize = 5 * 1024 * 1024

// CompanyHandler exposes the company-facing surface: auth plus everything
// gated on company ownership.
type CompanyHandler struct {
	*BaseHandler
	authService        services.CompanyAuthService
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewCompanyHandler(
	base *BaseHandler,
	authService services.CompanyAuthService,
	jobService services.JobService,
	applicationService services.ApplicationService,
) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:        base,
		authService:        authService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

// Register handles POST /api/company/register (multipart, optional logo in
// the `image` field).
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if !h.BindFormAndValidate(c, &req) {
		return
	}

	logo, err := h.ReadFormFile(c, "image", maxLogoSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req, logo)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, gin.H{"company": resp.Company, "token": resp.Token})
}

// Login handles POST /api/company/login.
func (h *CompanyHandler) Login(c *gin.Context) {
	var req dto.LoginCompanyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"company": resp.Company, "token": resp.Token})
}

// GetProfile handles GET /api/company/company.
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"company": company.Public()})
}

// PostJob handles POST /api/company/post-job.
func (h *CompanyHandler) PostJob(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), company, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, gin.H{"job": job})
}

// ListApplicants handles GET /api/company/applicants.
func (h *CompanyHandler) ListApplicants(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	apps, err := h.applicationService.ListForCompany(c.Request.Context(), company)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"applications": apps})
}

// ListJobs handles GET /api/company/list-jobs, returning the company's own
// jobs annotated with applicant counts.
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	jobs, err := h.jobService.ListForCompany(c.Request.Context(), company)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"jobsData": jobs})
}

// UpdateStatus handles PUT /api/company/update-status.
func (h *CompanyHandler) UpdateStatus(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	err := h.applicationService.TransitionStatus(
		c.Request.Context(), company, req.ID, models.ApplicationStatus(req.Status),
	)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.Message(c, http.StatusOK, "Status Changed")
}

// ChangeVisibility handles POST /api/company/change-visibility.
func (h *CompanyHandler) ChangeVisibility(c *gin.Context) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.ChangeVisibilityRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.ToggleVisibility(c.Request.Context(), company, req.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, http.StatusOK, gin.H{"job": job})
}
