package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// extensions maps the allowed screenshot content types to file extensions.
// The extension comes from this table only, never from the client.
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
}

func AllowedContentType(contentType string) bool {
	_, ok := extensions[contentType]
	return ok
}

type FileStore interface {
	Save(userID, assignmentID int64, data []byte, contentType string) (string, error)
	Delete(path string) error
}

type localFileStore struct {
	baseDir string
}

func NewLocalFileStore(baseDir string) (FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localFileStore{baseDir: baseDir}, nil
}

// Save writes the blob under <base>/<userID>/<assignmentID>_<uuid>.<ext>
// and returns the path relative to the base dir.
func (s *localFileStore) Save(userID, assignmentID int64, data []byte, contentType string) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", apperrors.ErrInvalidFileType
	}

	dir := filepath.Join(s.baseDir, fmt.Sprint(userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s.%s", assignmentID, uuid.NewString(), ext)
	relPath := filepath.Join(fmt.Sprint(userID), name)

	if err := os.WriteFile(filepath.Join(s.baseDir, relPath), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return relPath, nil
}

// Delete removes the blob. A missing file is not an error: the DB row is
// the source of truth and may outlive a lost blob.
func (s *localFileStore) Delete(path string) error {
	full := filepath.Join(s.baseDir, path)
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// drop the per-user dir once it is empty, ignore failures
	if err := os.Remove(filepath.Dir(full)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Debug("user upload dir not empty", zap.String("dir", filepath.Dir(full)))
	}
	return nil
}
