package handlers

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"webgis/models"

	"webgis/storage"
)

// countBlobs walks the disk store under the test API and counts files.
func countBlobs(t *testing.T, api *API) int {
	t.Helper()
	disk, ok := api.Store.(*storage.DiskStorage)
	if !ok {
		t.Fatalf("test store is not DiskStorage")
	}
	count := 0
	_ = filepath.Walk(disk.BasePath, func(_ string, info os.FileInfo, err error) error {
		if err == nil && info != nil && !info.IsDir() {
			count++
		}
		return nil
	})
	return count
}

func TestAvatarUploadRejectsOversized(t *testing.T) {
	api, router := newTestAPI(t)
	userID := registerUser(t, router, "a@campus.edu", "alice")

	big := filePart{field: "file", name: "big.jpg", contentType: "image/jpeg", data: bytes.Repeat([]byte("x"), 3<<20)}
	w := doMultipart(t, router, "/api/user/avatar", map[string]string{"userId": userID}, big)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if n := countBlobs(t, api); n != 0 {
		t.Errorf("blobs written = %d, want 0", n)
	}
}

func TestAvatarUploadRejectsNonImage(t *testing.T) {
	_, router := newTestAPI(t)
	userID := registerUser(t, router, "a@campus.edu", "alice")

	pdf := filePart{field: "file", name: "doc.pdf", contentType: "application/pdf", data: []byte("%PDF")}
	w := doMultipart(t, router, "/api/user/avatar", map[string]string{"userId": userID}, pdf)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCommentImagesRejectsTooMany(t *testing.T) {
	api, router := newTestAPI(t)
	userID := registerUser(t, router, "a@campus.edu", "alice")
	commentID := submitComment(t, router, "p1", userID, 4, "")

	images := []filePart{}
	for i := 0; i < 4; i++ {
		images = append(images, filePart{field: "images", name: "a.jpg", contentType: "image/jpeg", data: []byte("img")})
	}
	w := doMultipart(t, router, "/api/poi/comment/"+commentID+"/images", nil, images...)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var rows int64
	api.DB.Model(&models.POICommentImage{}).Count(&rows)
	if rows != 0 {
		t.Errorf("image rows = %d, want 0", rows)
	}
	if n := countBlobs(t, api); n != 0 {
		t.Errorf("blobs written = %d, want 0", n)
	}
}

func TestCommentImagesRejectsOversizedWholesale(t *testing.T) {
	api, router := newTestAPI(t)
	userID := registerUser(t, router, "a@campus.edu", "alice")
	commentID := submitComment(t, router, "p1", userID, 4, "")

	small := filePart{field: "images", name: "ok.jpg", contentType: "image/jpeg", data: []byte("img")}
	big := filePart{field: "images", name: "big.jpg", contentType: "image/jpeg", data: bytes.Repeat([]byte("x"), 4<<20)}
	w := doMultipart(t, router, "/api/poi/comment/"+commentID+"/images", nil, small, big)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	// The valid file must not have been persisted either.
	if n := countBlobs(t, api); n != 0 {
		t.Errorf("blobs written = %d, want 0", n)
	}
}

func TestCommentImagesUnknownComment(t *testing.T) {
	_, router := newTestAPI(t)

	image := filePart{field: "images", name: "a.jpg", contentType: "image/jpeg", data: []byte("img")}
	w := doMultipart(t, router, "/api/poi/comment/nope/images", nil, image)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUploadsRejectedWithoutBlobStore(t *testing.T) {
	api, router := newTestAPI(t)
	userID := registerUser(t, router, "a@campus.edu", "alice")
	api.Store = nil

	image := filePart{field: "file", name: "a.png", contentType: "image/png", data: []byte("img")}
	w := doMultipart(t, router, "/api/user/avatar", map[string]string{"userId": userID}, image)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "blob storage is not configured" {
		t.Errorf("error = %v", body["error"])
	}
}
