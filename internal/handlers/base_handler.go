package handlers

import (
	"io"
	"mime/multipart"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the shared binding and validation plumbing.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidate binds the JSON body into obj and runs struct validation.
// On failure the error response is already written; callers just return.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindFormAndValidate is BindAndValidate for multipart/urlencoded forms.
func (h *BaseHandler) BindFormAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if valErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(valErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ReadFormFile loads a multipart file fully into memory. A missing file is
// reported as (nil, nil) so optional uploads stay optional.
func (h *BaseHandler) ReadFormFile(c *gin.Context, field string, maxSize int64) (*services.UploadedFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if maxSize > 0 && fileHeader.Size > maxSize {
		return nil, apperrors.ErrResumeTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.UploadFailed(err)
	}
	defer file.Close()

	var reader io.Reader = file
	if maxSize > 0 {
		reader = io.LimitReader(file, maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.UploadFailed(err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, apperrors.ErrResumeTooLarge
	}

	return &services.UploadedFile{
		Data:        data,
		ContentType: contentTypeOf(fileHeader),
	}, nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

// OK writes the success envelope with extra payload fields merged in.
func (h *BaseHandler) OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Message is the success envelope carrying only a human-readable message.
func (h *BaseHandler) Message(c *gin.Context, status int, message string) {
	h.OK(c, status, gin.H{"message": message})
}
