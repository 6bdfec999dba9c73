package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Checkin is a geotagged photo post, independent of POIs. Exactly one
// image per check-in.
type Checkin struct {
	ID             string    `gorm:"type:varchar(36);primaryKey"`
	UserID         string    `gorm:"type:varchar(36);index"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	Text           string    `gorm:"type:text"`
	ImageObjectKey string    `gorm:"type:varchar(300);not null"`
	CreatedAt      time.Time `gorm:"index"`
}

func CheckinCreate(db *gorm.DB, userID string, latitude, longitude float64, text, imageObjectKey string) (c Checkin, err error) {
	c = Checkin{
		ID:             uuid.NewString(),
		UserID:         userID,
		Latitude:       latitude,
		Longitude:      longitude,
		Text:           text,
		ImageObjectKey: imageObjectKey,
	}
	return c, db.Create(&c).Error
}

func CheckinByID(db *gorm.DB, id string) (c Checkin, err error) {
	err = db.First(&c, "id = ?", id).Error
	return c, err
}

func CheckinDelete(db *gorm.DB, id string) error {
	return db.Delete(&Checkin{}, "id = ?", id).Error
}
