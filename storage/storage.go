package storage

import (
	"errors"
	"io"

	"webgis/config"
)

// ErrNotFound is returned when an object key has no stored blob.
var ErrNotFound = errors.New("object not found")

// API is the blob store contract. Keys are hierarchical strings chosen by
// the caller ("avatars/<userId>/<uuid>.png"); the store never invents them.
type API interface {
	Save(key, contentType string, reader io.Reader) error
	// Open returns the object content, its content type and size
	// (-1 when unknown).
	Open(key string) (io.ReadCloser, string, int64, error)
	// Delete is idempotent: deleting a missing key is not an error.
	Delete(key string) error
}

// Init selects a backend from configuration. It returns nil when no
// backend is configured; callers must treat a nil store as an
// unconfigured dependency and fail the operations that need it.
func Init(cfg *config.Storage) API {
	if cfg.S3Bucket != "" {
		return NewS3Storage(cfg)
	}
	if cfg.DiskPath != "" {
		return NewDiskStorage(cfg.DiskPath)
	}
	return nil
}
