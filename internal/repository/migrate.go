package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table the
// repositories read and write.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&sessionModel{},
		&roomModel{},
		&bookingModel{},
		&billModel{},
	)
}
