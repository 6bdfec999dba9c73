package handlers

import (
	"errors"
	"log"
	"net/http"

	"webgis/media"
	"webgis/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserInfo struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
}

func (a *API) Register(c *gin.Context) {
	req := RegisterRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	if _, err := models.UserByEmail(a.DB, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, Response{"email already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	user, err := models.UserCreate(a.DB, req.Email, req.Username, req.Password)
	if err != nil {
		log.Printf("User create error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    UserInfo{ID: user.ID, Email: user.Email, Username: user.Username},
	})
}

func (a *API) Login(c *gin.Context) {
	req := LoginRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	user, err := models.UserByEmail(a.DB, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, Response{"invalid email or password"})
		return
	}
	info := UserInfo{ID: user.ID, Email: user.Email, Username: user.Username}
	if key := models.UserAvatarKey(a.DB, user.ID); key != "" {
		avatarURL := media.FileURL(key)
		info.AvatarURL = &avatarURL
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": info})
}
