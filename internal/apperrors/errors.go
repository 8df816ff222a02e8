package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the single error currency above the repository layer. Services
// return it, HandleError maps it onto the HTTP response.
type AppError struct {
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy carrying per-field details. The predefined
// errors stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is reports whether err wraps target. Thin alias so callers don't import
// both errors and apperrors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

var (
	// Authentication.
	ErrUnauthorized       = &AppError{Code: CodeUnauthorized, Message: "Access denied. No token provided.", HTTPCode: http.StatusUnauthorized}
	ErrInvalidCredential  = &AppError{Code: CodeUnauthorized, Message: "Invalid token.", HTTPCode: http.StatusUnauthorized}
	ErrCredentialExpired  = &AppError{Code: CodeTokenExpired, Message: "Token expired. Please log in again.", HTTPCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: CodeUnauthorized, Message: "Invalid email or password", HTTPCode: http.StatusUnauthorized}

	// Authorization.
	ErrForbidden   = &AppError{Code: CodeForbidden, Message: "You are not allowed to perform this action", HTTPCode: http.StatusForbidden}
	ErrNotJobOwner = &AppError{Code: CodeForbidden, Message: "Job does not belong to your company", HTTPCode: http.StatusForbidden}

	// Lookups.
	ErrCompanyNotFound     = &AppError{Code: CodeNotFound, Message: "Company not found", HTTPCode: http.StatusNotFound}
	ErrUserNotFound        = &AppError{Code: CodeNotFound, Message: "User not found", HTTPCode: http.StatusNotFound}
	ErrJobNotFound         = &AppError{Code: CodeNotFound, Message: "Job not found", HTTPCode: http.StatusNotFound}
	ErrApplicationNotFound = &AppError{Code: CodeNotFound, Message: "Application not found", HTTPCode: http.StatusNotFound}

	// Conflicts.
	ErrAlreadyApplied  = &AppError{Code: CodeConflict, Message: "You have already applied for this job", HTTPCode: http.StatusConflict}
	ErrStatusFinalized = &AppError{Code: CodeConflict, Message: "Application status has already been decided", HTTPCode: http.StatusConflict}
	ErrCompanyExists   = &AppError{Code: CodeConflict, Message: "Company with this email already exists", HTTPCode: http.StatusConflict}

	// Input.
	ErrInvalidJobID       = &AppError{Code: CodeInvalidIdentifier, Message: "Invalid job id", HTTPCode: http.StatusBadRequest}
	ErrInvalidStatusValue = &AppError{Code: CodeValidationFailed, Message: "Status must be Accepted or Rejected", HTTPCode: http.StatusBadRequest}
	ErrResumeRequired     = &AppError{Code: CodeValidationFailed, Message: "Resume file is required", HTTPCode: http.StatusBadRequest}
	ErrResumeNotPDF       = &AppError{Code: CodeValidationFailed, Message: "Resume must be a PDF file", HTTPCode: http.StatusBadRequest}
	ErrResumeTooLarge     = &AppError{Code: CodeValidationFailed, Message: "Resume must not exceed 5 MB", HTTPCode: http.StatusBadRequest}
)

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message, HTTPCode: http.StatusUnauthorized}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: message, HTTPCode: http.StatusBadRequest}
}

func ValidationError(details interface{}) *AppError {
	return &AppError{
		Code:     CodeValidationFailed,
		Message:  "Validation failed",
		Details:  details,
		HTTPCode: http.StatusBadRequest,
	}
}

func UploadFailed(err error) *AppError {
	return &AppError{
		Code:     CodeUploadFailed,
		Message:  "Failed to store uploaded file",
		Err:      err,
		HTTPCode: http.StatusBadGateway,
	}
}

func InternalError(err error) *AppError {
	return &AppError{
		Code:     CodeInternalError,
		Message:  "Internal server error",
		Err:      err,
		HTTPCode: http.StatusInternalServerError,
	}
}
