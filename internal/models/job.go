package models

// Job is owned by exactly one company. Only the owner may toggle visibility.
type Job struct {
	BaseModel
	CompanyID   string `gorm:"type:uuid;not null;index" json:"companyId"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Location    string `gorm:"not null" json:"location"`
	Salary      string `gorm:"not null" json:"salary"`
	Level       string `gorm:"not null" json:"level"`
	Category    string `gorm:"not null" json:"category"`
	Visible     bool   `gorm:"default:true" json:"visible"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// JobWithApplicants carries the derived applicant count for company listings.
// The count is never stored on the job row.
type JobWithApplicants struct {
	Job
	Applicants int64 `json:"applicants"`
}
