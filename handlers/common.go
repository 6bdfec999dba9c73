package handlers

import (
	"webgis/config"
	"webgis/storage"

	"gorm.io/gorm"
)

// Response is the JSON error envelope shared by every endpoint.
type Response struct {
	Error string `json:"error"`
}

var (
	NotFoundResponse      = Response{"not found"}
	MissingFieldsResponse = Response{"missing required fields"}
	NoStorageResponse     = Response{"blob storage is not configured"}
)

// DeleteRequest authorizes a delete: the supplied id must match the row
// owner. Advisory only, there is no session layer.
type DeleteRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// API carries the process-wide dependencies. Built once in main and passed
// by reference; handlers never touch ambient globals.
type API struct {
	DB     *gorm.DB
	Store  storage.API
	Config *config.Config
}

func NewAPI(db *gorm.DB, store storage.API, cfg *config.Config) *API {
	return &API{DB: db, Store: store, Config: cfg}
}
