// Package storage keeps uploaded files on local disk under random
// names so original filenames never reach the filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type PhotoStore struct {
	dir      string
	maxBytes int64
}

func NewPhotoStore(dir string, maxSizeMB int64) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &PhotoStore{
		dir:      dir,
		maxBytes: maxSizeMB * 1024 * 1024,
	}, nil
}

// Save writes the photo to disk and returns the stored filename. The
// extension is taken from the original name; content beyond the size
// limit aborts the write.
func (s *PhotoStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedPhotoExtensions[ext] {
		return "", fmt.Errorf("unsupported photo format: %s", ext)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", fmt.Errorf("photo exceeds maximum size of %d bytes", s.maxBytes)
	}

	return name, nil
}

// Remove deletes a stored photo. A missing file is not an error.
func (s *PhotoStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
