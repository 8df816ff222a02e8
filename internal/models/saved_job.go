package models

// SavedJob is a membership record: at most one row per (user, job) at any
// instant, enforced by the composite unique index. Rows are created and
// destroyed by toggling, never updated.
//
// UserID holds the external identity subject, matching how the save feature is
// keyed at the API edge.
type SavedJob struct {
	BaseModel
	UserID string `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"userId"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"jobId"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
