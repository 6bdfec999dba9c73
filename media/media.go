package media

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"strings"

	"webgis/storage"

	"github.com/google/uuid"
)

// Per-kind upload caps.
const (
	MaxAvatarSize       = 2 << 20
	MaxCommentImageSize = 3 << 20
	MaxCheckinImageSize = 5 << 20
	MaxCommentImages    = 3
)

var ErrNotAnImage = errors.New("only image files are supported")

// GuessExtension maps a declared image content type to a file extension.
// Best-effort from the declared type only, no content sniffing.
func GuessExtension(contentType string) string {
	normalized := strings.ToLower(contentType)
	switch {
	case strings.Contains(normalized, "png"):
		return "png"
	case strings.Contains(normalized, "webp"):
		return "webp"
	case strings.Contains(normalized, "gif"):
		return "gif"
	case strings.Contains(normalized, "jpeg"), strings.Contains(normalized, "jpg"):
		return "jpg"
	}
	return "bin"
}

// ValidateImage checks the declared type and size of an uploaded file,
// before anything is written to blob storage.
func ValidateImage(file *multipart.FileHeader, maxSize int64) error {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return ErrNotAnImage
	}
	if file.Size > maxSize {
		return fmt.Errorf("image too large (max %d MB)", maxSize>>20)
	}
	return nil
}

// ObjectKey builds a fresh blob key of the form
// {category}/{ownerId}/{uuid}.{ext}.
func ObjectKey(category, ownerID, contentType string) string {
	return category + "/" + ownerID + "/" + uuid.NewString() + "." + GuessExtension(contentType)
}

// SaveImage writes the uploaded file to blob storage under key. The blob
// goes in before any row references it, so a row never points at a missing
// blob; an interrupt right after leaves an orphaned blob, which is the
// accepted failure mode.
func SaveImage(store storage.API, key string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return store.Save(key, file.Header.Get("Content-Type"), src)
}

// FileURL is the retrieval path for an object key. Clients always get
// URLs, never raw keys.
func FileURL(key string) string {
	return "/api/files/" + url.PathEscape(key)
}

// Cleanup deletes blobs best-effort after their rows are gone. The rows are
// authoritative: a leaked blob is acceptable, a dangling reference is not,
// so failures are logged and swallowed.
func Cleanup(store storage.API, keys ...string) {
	if store == nil {
		return
	}
	for _, key := range keys {
		if err := store.Delete(key); err != nil {
			log.Printf("Blob cleanup failed for %s: %v", key, err)
		}
	}
}
