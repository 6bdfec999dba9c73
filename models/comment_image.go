package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type POICommentImage struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	CommentID string `gorm:"type:varchar(36);index"`
	ObjectKey string `gorm:"type:varchar(300);not null"`
	CreatedAt time.Time
}

func CommentImageAdd(db *gorm.DB, commentID, objectKey string) error {
	image := POICommentImage{
		ID:        uuid.NewString(),
		CommentID: commentID,
		ObjectKey: objectKey,
	}
	return db.Create(&image).Error
}

// CommentImageKeys returns the blob keys of the given comments, grouped by
// comment, oldest upload first.
func CommentImageKeys(db *gorm.DB, commentIDs []string) (map[string][]string, error) {
	result := map[string][]string{}
	if len(commentIDs) == 0 {
		return result, nil
	}
	rows, err := db.Model(&POICommentImage{}).
		Select("comment_id, object_key").
		Where("comment_id in ?", commentIDs).
		Order("created_at ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var commentID, objectKey string
		if err = rows.Scan(&commentID, &objectKey); err != nil {
			return nil, err
		}
		result[commentID] = append(result[commentID], objectKey)
	}
	return result, rows.Err()
}
