package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserAvatar holds the single avatar blob key per user.
type UserAvatar struct {
	UserID    string `gorm:"type:varchar(36);primaryKey"`
	ObjectKey string `gorm:"type:varchar(300);not null"`
	UpdatedAt time.Time
}

// SetUserAvatar records the object key for the user, replacing any previous
// one. The previous blob stays in storage; see DESIGN.md.
func SetUserAvatar(db *gorm.DB, userID, objectKey string) error {
	avatar := UserAvatar{UserID: userID, ObjectKey: objectKey}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"object_key", "updated_at"}),
	}).Create(&avatar).Error
}

// UserAvatarKey returns the stored key, or "" when the user has no avatar.
func UserAvatarKey(db *gorm.DB, userID string) string {
	var avatar UserAvatar
	if db.First(&avatar, "user_id = ?", userID).Error != nil {
		return ""
	}
	return avatar.ObjectKey
}
