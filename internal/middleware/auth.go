package middleware

import (
	"strings"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/identity"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	companyContextKey = "company"
	userContextKey    = "user"
)

// CompanyAuth verifies the self-issued company credential and attaches the
// resolved Company to the request. The token travels in the Authorization
// header (with or without a Bearer prefix) or a bare `token` header.
func CompanyAuth(authService services.CompanyAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := extractToken(c)
		if rawToken == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Access denied. No token provided."))
			c.Abort()
			return
		}

		company, err := authService.Verify(c.Request.Context(), rawToken)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), company.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(companyContextKey, company)
		c.Next()
	}
}

// UserAuth validates the external identity token and resolves (or lazily
// provisions) the local User record.
func UserAuth(verifier identity.Verifier, userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := extractToken(c)
		if rawToken == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Access denied. No token provided."))
			c.Abort()
			return
		}

		externalID, err := verifier.Verify(c.Request.Context(), rawToken)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidCredential)
			c.Abort()
			return
		}

		user, err := userService.ResolveByExternalID(c.Request.Context(), externalID)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(userContextKey, user)
		c.Next()
	}
}

// GetCompany extracts the company principal attached by CompanyAuth.
func GetCompany(c *gin.Context) (*models.Company, bool) {
	val, exists := c.Get(companyContextKey)
	if !exists {
		return nil, false
	}
	company, ok := val.(*models.Company)
	return company, ok
}

// GetUser extracts the user principal attached by UserAuth.
func GetUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		header = c.GetHeader("token")
	}
	return strings.TrimPrefix(header, "Bearer ")
}
