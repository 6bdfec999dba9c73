package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Routes registers every endpoint in one place. Requests that match
// nothing get a JSON 404 instead of gin's default empty body.
func (a *API) Routes(router *gin.Engine) {
	router.POST("/api/auth/register", a.Register)
	router.POST("/api/auth/login", a.Login)

	router.POST("/api/poi/comment", a.CommentSubmit)
	router.GET("/api/poi/:poiId/comments", a.CommentList)
	router.GET("/api/poi/:poiId/rating", a.RatingGet)
	router.DELETE("/api/poi/comment/:commentId", a.CommentDelete)
	router.POST("/api/poi/comment/:commentId/images", a.CommentImagesUpload)

	router.POST("/api/user/avatar", a.AvatarUpload)

	router.GET("/api/checkins", a.CheckinList)
	router.POST("/api/checkins", a.CheckinCreate)
	router.DELETE("/api/checkins/:id", a.CheckinDelete)

	router.GET("/api/files/*key", a.FileGet)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
	})
}
