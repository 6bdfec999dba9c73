package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"webgis/config"
	"webgis/db"
	"webgis/handlers"
	"webgis/models"
	"webgis/storage"
	"webgis/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	dbInstance, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	if err = models.Migrate(dbInstance); err != nil {
		log.Fatalf("DB migrate error: %v", err)
	}
	store := storage.Init(&cfg.Storage)
	if store == nil {
		log.Print("No blob storage configured; file uploads will be rejected")
	}

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		// One bad request must never take the process down.
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprint(recovered)})
	}))
	_ = router.SetTrustedProxies([]string{})
	if cfg.DebugMode {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	if !cfg.DebugMode {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/files"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	api := handlers.NewAPI(dbInstance, store, cfg)
	api.Routes(router)

	if len(cfg.TLSDomains) > 0 {
		err = autotls.Run(router, cfg.TLSDomains...)
	} else {
		err = router.Run(cfg.BindAddress)
	}
	log.Fatalf("Server stopped: %v", err)
}
