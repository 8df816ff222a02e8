package dto

// RegisterCompanyRequest arrives as multipart form data; the optional logo
// file is carried separately by the handler.
type RegisterCompanyRequest struct {
	Name     string `form:"name" json:"name" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

type LoginCompanyRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type CompanyResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type AuthResponse struct {
	Company CompanyResponse `json:"company"`
	Token   string          `json:"token"`
}
