package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type POIComment struct {
	ID        string  `gorm:"type:varchar(36);primaryKey"`
	POIID     string  `gorm:"column:poi_id;type:varchar(100);index"`
	UserID    string  `gorm:"type:varchar(36)"`
	Rating    float64 `gorm:"not null"`
	Comment   string  `gorm:"type:text"`
	CreatedAt time.Time
}

func CommentCreate(db *gorm.DB, poiID, userID string, rating float64, comment string) (c POIComment, err error) {
	c = POIComment{
		ID:      uuid.NewString(),
		POIID:   poiID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	return c, db.Create(&c).Error
}

func CommentByID(db *gorm.DB, id string) (c POIComment, err error) {
	err = db.First(&c, "id = ?", id).Error
	return c, err
}

// CommentDelete removes the comment row and its image rows, returning the
// blob keys that should be cleaned up afterwards. Rows go first so nothing
// relational can reference a deleted blob.
func CommentDelete(db *gorm.DB, comment *POIComment) ([]string, error) {
	var keys []string
	if err := db.Model(&POICommentImage{}).Where("comment_id = ?", comment.ID).Pluck("object_key", &keys).Error; err != nil {
		return nil, err
	}
	if err := db.Delete(&POICommentImage{}, "comment_id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	if err := db.Delete(&POIComment{}, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
