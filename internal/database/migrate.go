package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema, including the composite unique
// indexes the concurrency model relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.JobApplication{},
		&models.SavedJob{},
	)
}
