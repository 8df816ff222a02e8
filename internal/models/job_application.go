package models

// JobApplication links a user to a job. CompanyID is denormalized from the job
// at creation time so company-side listings avoid a join. The composite unique
// index is the authoritative duplicate-application guard.
type JobApplication struct {
	BaseModel
	UserID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"userId"`
	JobID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"jobId"`
	CompanyID string            `gorm:"type:uuid;not null;index" json:"companyId"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job     *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
