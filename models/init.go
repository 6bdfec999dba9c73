package models

import "gorm.io/gorm"

// Migrate creates the schema if absent. AutoMigrate is idempotent, so it is
// safe on every start and tolerates concurrent starters.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserAvatar{},
		&POIComment{},
		&POICommentImage{},
		&POIRating{},
		&Checkin{},
	)
}
