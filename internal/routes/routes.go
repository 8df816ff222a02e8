package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/identity"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Register wires the full HTTP surface onto the router.
func Register(
	router *gin.Engine,
	h *handlers.AppHandlers,
	sc *services.ServiceContainer,
	verifier identity.Verifier,
) {
	api := router.Group("/api")

	company := api.Group("/company")
	{
		company.POST("/register", h.Company.Register)
		company.POST("/login", h.Company.Login)

		authed := company.Group("")
		authed.Use(middleware.CompanyAuth(sc.CompanyAuthService))
		{
			authed.GET("/company", h.Company.GetProfile)
			authed.POST("/post-job", h.Company.PostJob)
			authed.GET("/applicants", h.Company.ListApplicants)
			authed.GET("/list-jobs", h.Company.ListJobs)
			authed.PUT("/update-status", h.Company.UpdateStatus)
			authed.POST("/change-visibility", h.Company.ChangeVisibility)
		}
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Job.ListVisible)
		jobs.GET("/all", h.Job.ListAll)
		jobs.GET("/count", h.Job.Count)
		jobs.GET("/:id", h.Job.GetByID)
	}

	users := api.Group("/users")
	{
		users.POST("/sync", h.User.Sync)

		authed := users.Group("")
		authed.Use(middleware.UserAuth(verifier, sc.UserService))
		{
			authed.GET("/data", h.User.GetData)
			authed.GET("/applications", h.User.ListApplications)
			authed.POST("/apply-job", h.User.ApplyJob)
			authed.POST("/update-resume", h.User.UpdateResume)

			saved := authed.Group("/saved-jobs")
			{
				saved.POST("/save-job", h.SavedJob.Toggle)
				saved.GET("/saved-jobs/list", h.SavedJob.List)
			}
		}
	}
}
