package handlers

import (
	"net/http"

	"webgis/media"
	"webgis/models"

	"github.com/gin-gonic/gin"
)

func (a *API) AvatarUpload(c *gin.Context) {
	if a.Store == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	userID := c.PostForm("userId")
	file, err := c.FormFile("file")
	if userID == "" || err != nil {
		c.JSON(http.StatusBadRequest, Response{"missing userId or file"})
		return
	}
	if err = media.ValidateImage(file, media.MaxAvatarSize); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	key := media.ObjectKey("avatars", userID, file.Header.Get("Content-Type"))
	if err = media.SaveImage(a.Store, key, file); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	// Upsert keeps one avatar row per user. The blob the old key pointed
	// at is left in place, matching the documented replace behaviour.
	if err = models.SetUserAvatar(a.DB, userID, key); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "avatarUrl": media.FileURL(key)})
}

func (a *API) CommentImagesUpload(c *gin.Context) {
	if a.Store == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	comment, err := models.CommentByID(a.DB, c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{"comment not found"})
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, Response{"no images selected"})
		return
	}
	if len(files) > media.MaxCommentImages {
		c.JSON(http.StatusBadRequest, Response{"at most 3 images per upload"})
		return
	}
	// Validate the whole batch up front: one bad file rejects the call
	// with nothing persisted.
	for _, file := range files {
		if err = media.ValidateImage(file, media.MaxCommentImageSize); err != nil {
			c.JSON(http.StatusBadRequest, Response{err.Error()})
			return
		}
	}
	urls := []string{}
	for _, file := range files {
		key := media.ObjectKey("comments", comment.ID, file.Header.Get("Content-Type"))
		if err = media.SaveImage(a.Store, key, file); err != nil {
			c.JSON(http.StatusInternalServerError, Response{err.Error()})
			return
		}
		if err = models.CommentImageAdd(a.DB, comment.ID, key); err != nil {
			c.JSON(http.StatusInternalServerError, Response{err.Error()})
			return
		}
		urls = append(urls, media.FileURL(key))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "urls": urls})
}
