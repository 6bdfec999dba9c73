package media

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

func TestGuessExtension(t *testing.T) {
	cases := map[string]string{
		"image/png":                "png",
		"image/webp":               "webp",
		"image/gif":                "gif",
		"image/jpeg":               "jpg",
		"IMAGE/JPEG":               "jpg",
		"image/jpg":                "jpg",
		"image/svg+xml":            "bin",
		"application/octet-stream": "bin",
		"":                         "bin",
	}
	for contentType, want := range cases {
		if got := GuessExtension(contentType); got != want {
			t.Errorf("GuessExtension(%q) = %q, want %q", contentType, got, want)
		}
	}
}

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: "f", Header: header, Size: size}
}

func TestValidateImage(t *testing.T) {
	if err := ValidateImage(fileHeader("image/png", 100), MaxAvatarSize); err != nil {
		t.Errorf("small png rejected: %v", err)
	}
	if err := ValidateImage(fileHeader("application/pdf", 100), MaxAvatarSize); err == nil {
		t.Error("pdf accepted")
	}
	if err := ValidateImage(fileHeader("image/jpeg", MaxAvatarSize+1), MaxAvatarSize); err == nil {
		t.Error("oversized file accepted")
	}
	// Exactly at the cap is fine.
	if err := ValidateImage(fileHeader("image/jpeg", MaxAvatarSize), MaxAvatarSize); err != nil {
		t.Errorf("file at cap rejected: %v", err)
	}
}

func TestObjectKeyShape(t *testing.T) {
	key := ObjectKey("avatars", "u1", "image/png")
	if !strings.HasPrefix(key, "avatars/u1/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q", key)
	}
	if key == ObjectKey("avatars", "u1", "image/png") {
		t.Error("keys are not unique per call")
	}
}

// Keys are percent-encoded as a single path segment, slashes included,
// the same form the front end produces with encodeURIComponent.
func TestFileURLEscapesKey(t *testing.T) {
	url := FileURL("avatars/u 1/x.png")
	if url != "/api/files/avatars%2Fu%201%2Fx.png" {
		t.Errorf("url = %q", url)
	}
}
