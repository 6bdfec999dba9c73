package storage

import (
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DiskStorage keeps blobs as plain files under BasePath.
type DiskStorage struct {
	// BasePath is a directory (usually mount point of a disk) that is writable by the current process
	BasePath  string
	dirs      map[string]bool
	dirsMutex sync.Mutex
}

func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{
		BasePath: basePath,
		dirs:     make(map[string]bool, 10),
	}
}

func (s *DiskStorage) createDir(dir string) error {
	s.dirsMutex.Lock()
	defer s.dirsMutex.Unlock()

	if ok := s.dirs[dir]; ok {
		return nil
	}
	s.dirs[dir] = true
	return os.MkdirAll(dir, 0777)
}

func (s *DiskStorage) fullPath(key string) string {
	return filepath.Join(s.BasePath, filepath.FromSlash(key))
}

func (s *DiskStorage) Save(key, contentType string, reader io.Reader) error {
	fileName := s.fullPath(key)
	if err := s.createDir(filepath.Dir(fileName)); err != nil {
		return err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, reader)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (s *DiskStorage) Open(key string) (io.ReadCloser, string, int64, error) {
	file, err := os.Open(s.fullPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", 0, ErrNotFound
		}
		return nil, "", 0, err
	}
	size := int64(-1)
	if info, statErr := file.Stat(); statErr == nil {
		size = info.Size()
	}
	return file, contentTypeForKey(key), size, nil
}

func (s *DiskStorage) Delete(key string) error {
	err := os.Remove(s.fullPath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// contentTypeForKey derives the content type from the key extension.
// Disk files carry no metadata, unlike S3 objects.
func contentTypeForKey(key string) string {
	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(key))); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
