package models

import (
	"time"

	"webgis/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const saltSize = 60

type User struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Email        string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Username     string `gorm:"type:varchar(100)"`
	PasswordHash string `gorm:"type:varchar(128)"`
	PassSalt     string `gorm:"type:varchar(200)"`
	CreatedAt    time.Time
}

func UserCreate(db *gorm.DB, email, username, plainTextPassword string) (u User, err error) {
	u.ID = uuid.NewString()
	u.Email = email
	u.Username = username
	u.PassSalt = utils.RandSalt(saltSize)
	u.PasswordHash = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Create(&u).Error
}

// UserByEmail passes gorm.ErrRecordNotFound through so callers can tell
// "no such user" apart from a storage failure.
func UserByEmail(db *gorm.DB, email string) (u User, err error) {
	err = db.First(&u, "email = ?", email).Error
	return u, err
}

func UserByID(db *gorm.DB, id string) (u User, found bool) {
	result := db.First(&u, "id = ?", id)
	return u, result.Error == nil
}

func (u *User) CheckPassword(plainTextPassword string) bool {
	return u.PasswordHash == utils.Sha512String(plainTextPassword+u.PassSalt)
}
