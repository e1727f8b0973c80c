package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akovalyov/movie-catalog/internal/logger"
)

// URLPrefix is the public path prefix under which stored files are served.
const URLPrefix = "/uploads"

// ErrUnsupportedFileType is returned for uploads that are not jpeg, jpg or png.
var ErrUnsupportedFileType = errors.New("only .jpeg, .jpg, and .png file types are allowed")

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// AllowedContentType reports whether the mime type is an accepted image type.
func AllowedContentType(contentType string) bool {
	_, ok := allowedContentTypes[contentType]
	return ok
}

// FileStorage stores uploaded poster images on the local filesystem.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the uploads directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *FileStorage) Dir() string {
	return s.dir
}

// Save writes the uploaded image to disk under a unique name and returns its
// public path. The original name contributes only its extension.
func (s *FileStorage) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	if _, ok := allowedContentTypes[contentType]; !ok {
		return "", ErrUnsupportedFileType
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		// A half-written poster must not stay behind
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	logger.Log.Infow("stored uploaded file",
		"path", path,
		"content_type", contentType,
	)

	return URLPrefix + "/" + name, nil
}
