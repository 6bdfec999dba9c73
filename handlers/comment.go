package handlers

import (
	"net/http"
	"time"

	"webgis/media"
	"webgis/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const commentListLimit = 20

type CommentSubmitRequest struct {
	POIID   string   `json:"poiId" binding:"required"`
	UserID  string   `json:"userId" binding:"required"`
	Rating  *float64 `json:"rating" binding:"required"`
	Comment string   `json:"comment"`
}

type CommentInfo struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Username  string   `json:"username"`
	Rating    float64  `json:"rating"`
	Comment   string   `json:"comment"`
	CreatedAt string   `json:"createdAt"`
	Images    []string `json:"images"`
}

func (a *API) CommentSubmit(c *gin.Context) {
	req := CommentSubmitRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		c.JSON(http.StatusBadRequest, Response{"rating must be between 1 and 5"})
		return
	}
	comment, err := models.CommentCreate(a.DB, req.POIID, req.UserID, *req.Rating, req.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	if err = models.RecomputeRating(a.DB, req.POIID); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "commentId": comment.ID})
}

func (a *API) CommentList(c *gin.Context) {
	poiID := c.Param("poiId")
	rows, err := a.DB.Table("poi_comments").
		Select("poi_comments.id, poi_comments.user_id, users.username, poi_comments.rating, poi_comments.comment, poi_comments.created_at").
		Joins("join users on users.id = poi_comments.user_id").
		Where("poi_comments.poi_id = ?", poiID).
		Order("poi_comments.created_at DESC").
		Limit(commentListLimit).
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	defer rows.Close()
	result := []CommentInfo{}
	commentIDs := []string{}
	for rows.Next() {
		info := CommentInfo{Images: []string{}}
		var createdAt time.Time
		if err = rows.Scan(&info.ID, &info.UserID, &info.Username, &info.Rating, &info.Comment, &createdAt); err != nil {
			c.JSON(http.StatusInternalServerError, Response{err.Error()})
			return
		}
		info.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		result = append(result, info)
		commentIDs = append(commentIDs, info.ID)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	imageKeys, err := models.CommentImageKeys(a.DB, commentIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	for i := range result {
		for _, key := range imageKeys[result[i].ID] {
			result[i].Images = append(result[i].Images, media.FileURL(key))
		}
	}
	c.JSON(http.StatusOK, gin.H{"comments": result})
}

func (a *API) RatingGet(c *gin.Context) {
	rating := models.RatingFor(a.DB, c.Param("poiId"))
	c.JSON(http.StatusOK, gin.H{
		"averageRating": rating.AverageRating,
		"totalRatings":  rating.TotalRatings,
	})
}

func (a *API) CommentDelete(c *gin.Context) {
	req := DeleteRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"missing userId"})
		return
	}
	comment, err := models.CommentByID(a.DB, c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{"comment not found"})
		return
	}
	if comment.UserID != req.UserID {
		c.JSON(http.StatusForbidden, Response{"not allowed to delete this comment"})
		return
	}
	keys, err := models.CommentDelete(a.DB, &comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	media.Cleanup(a.Store, keys...)
	if err = models.RecomputeRating(a.DB, comment.POIID); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
