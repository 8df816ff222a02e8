package apperrors

import (
	"errors"
	"net/http"

	"jobboard_backend/internal/logger"
	appvalidator "jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError writes the error envelope for any error bubbling out of a
// service or middleware. Unknown errors are logged and masked as 500s.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxWithError(c.Request.Context(), "request failed", err, "code", appErr.Code)
		}
		c.JSON(appErr.HTTPCode, errorBody{
			Success: false,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	var valErr *appvalidator.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, errorBody{
			Success: false,
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: valErr.Errors,
		})
		return
	}

	logger.CtxWithError(c.Request.Context(), "unhandled error", err)
	c.JSON(http.StatusInternalServerError, errorBody{
		Success: false,
		Code:    CodeInternalError,
		Message: "Internal server error",
	})
}
