package handlers

import (
	"errors"
	"net/http"
	"strings"

	"webgis/storage"

	"github.com/gin-gonic/gin"
)

// FileGet streams a stored blob. Keys are immutable (every upload gets a
// fresh UUID key), so responses can be cached effectively forever.
func (a *API) FileGet(c *gin.Context) {
	if a.Store == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" || strings.Contains(key, "..") {
		c.JSON(http.StatusNotFound, Response{"file not found"})
		return
	}
	reader, contentType, size, err := a.Store.Open(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, Response{"file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	defer reader.Close()
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}
