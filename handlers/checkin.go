package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"webgis/media"
	"webgis/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	checkinDefaultLimit = 100
	checkinMaxLimit     = 200
)

type CheckinInfo struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Text      string  `json:"text"`
	ImageURL  string  `json:"imageUrl"`
	CreatedAt string  `json:"createdAt"`
}

func (a *API) CheckinList(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(checkinDefaultLimit)))
	if err != nil {
		limit = checkinDefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > checkinMaxLimit {
		limit = checkinMaxLimit
	}
	rows, err := a.DB.Table("checkins").
		Select("checkins.id, checkins.user_id, users.username, checkins.latitude, checkins.longitude, checkins.text, checkins.image_object_key, checkins.created_at").
		Joins("join users on users.id = checkins.user_id").
		Order("checkins.created_at DESC").
		Limit(limit).
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	defer rows.Close()
	result := []CheckinInfo{}
	for rows.Next() {
		info := CheckinInfo{}
		var imageObjectKey string
		var createdAt time.Time
		if err = rows.Scan(&info.ID, &info.UserID, &info.Username, &info.Latitude, &info.Longitude, &info.Text, &imageObjectKey, &createdAt); err != nil {
			c.JSON(http.StatusInternalServerError, Response{err.Error()})
			return
		}
		info.ImageURL = media.FileURL(imageObjectKey)
		info.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		result = append(result, info)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkins": result})
}

func (a *API) CheckinCreate(c *gin.Context) {
	if a.Store == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, Response{"missing userId"})
		return
	}
	latitude, latErr := strconv.ParseFloat(c.PostForm("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if latErr != nil || lonErr != nil || !isFinite(latitude) || !isFinite(longitude) {
		c.JSON(http.StatusBadRequest, Response{"missing or invalid location"})
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"missing image"})
		return
	}
	if err = media.ValidateImage(file, media.MaxCheckinImageSize); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	key := media.ObjectKey("checkins", userID, file.Header.Get("Content-Type"))
	// Blob first, row second: the row must never reference a missing blob.
	if err = media.SaveImage(a.Store, key, file); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	checkin, err := models.CheckinCreate(a.DB, userID, latitude, longitude, c.PostForm("text"), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	user, _ := models.UserByID(a.DB, userID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"checkin": CheckinInfo{
			ID:        checkin.ID,
			UserID:    checkin.UserID,
			Username:  user.Username,
			Latitude:  checkin.Latitude,
			Longitude: checkin.Longitude,
			Text:      checkin.Text,
			ImageURL:  media.FileURL(key),
			CreatedAt: checkin.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}

func (a *API) CheckinDelete(c *gin.Context) {
	req := DeleteRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"missing userId"})
		return
	}
	checkin, err := models.CheckinByID(a.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{"check-in not found"})
		return
	}
	if checkin.UserID != req.UserID {
		c.JSON(http.StatusForbidden, Response{"not allowed to delete this check-in"})
		return
	}
	if err = models.CheckinDelete(a.DB, checkin.ID); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	media.Cleanup(a.Store, checkin.ImageObjectKey)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
