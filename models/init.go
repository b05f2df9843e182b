package models

import "gorm.io/gorm"

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Image{},
		&Project{},
		&Slide{},
		&ProjectImage{},
		&SlideImage{},
		&Prompt{},
		&Skill{},
		&AdminUser{},
	)
}
