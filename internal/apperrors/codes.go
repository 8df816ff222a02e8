package apperrors

// Stable machine-readable error codes exposed on the wire.
const (
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeForbidden         = "FORBIDDEN"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidIdentifier = "INVALID_IDENTIFIER"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeUploadFailed      = "UPLOAD_FAILED"
	CodeInternalError     = "INTERNAL_ERROR"
)
