package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// FileStore persists one file per key under a base directory. Session data
// is credential material, so files are written with owner-only permissions.
type FileStore struct {
	baseDir string
}

// NewFileStore ensures the base directory exists and returns a handle.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		baseDir = "./sessions"
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Get reads the value stored for key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "key not found: "+key)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, "read key "+key)
	}
	return data, nil
}

// Set writes the value for key, replacing any previous value.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path := s.resolve(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "write key "+key)
	}
	if err := os.Rename(tmp, path); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "commit key "+key)
	}
	return nil
}

// Delete removes the value for key if present.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.resolve(key)); err != nil && !os.IsNotExist(err) {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "delete key "+key)
	}
	return nil
}

// Path exposes the underlying absolute path (useful for debugging).
func (s *FileStore) Path(key string) string {
	return s.resolve(key)
}

func (s *FileStore) resolve(key string) string {
	return filepath.Join(s.baseDir, sanitize(key)+".json")
}

// sanitize maps key characters that are meaningful to the filesystem onto
// underscores so keys like "session:teacher" stay single path segments.
func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', '/', '\\', '.', ' ':
			return '_'
		}
		return r
	}, key)
}
