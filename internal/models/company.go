package models

// Company is the employer-side principal. It authenticates with an internally
// issued credential and owns jobs. Never deleted by this core.
type Company struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Image        string `json:"image"`

	Jobs []Job `gorm:"foreignKey:CompanyID" json:"-"`
}

// PublicProfile is the password-free projection joined into job listings.
type PublicProfile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

func (c *Company) Public() PublicProfile {
	return PublicProfile{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Image: c.Image,
	}
}
