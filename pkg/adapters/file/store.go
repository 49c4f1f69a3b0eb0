// Package file implements ports.ObjectStore on the local filesystem.
// Each bucket is a directory under the store root; keys containing '/' map to
// subdirectories. Content types are not persisted.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paddison/lesolver/pkg/domain"
)

// ErrInvalidKey is returned for bucket or key names that would escape the store root.
var ErrInvalidKey = errors.New("invalid bucket or key")

// Store implements ports.ObjectStore using the local filesystem.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".lesolver/buckets".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".lesolver", "buckets")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(bucket, key string) (string, error) {
	if bucket == "" || bucket == "." || bucket == ".." || strings.ContainsAny(bucket, `/\`) {
		return "", fmt.Errorf("%w: bucket %q", ErrInvalidKey, bucket)
	}
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	dir := filepath.Join(s.BasePath, bucket)
	full := filepath.Join(dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(dir, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: key %q", ErrInvalidKey, key)
	}
	return full, nil
}

// Put writes the object atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	destPath, err := s.path(bucket, key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure bucket directory: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(destPath)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(body); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing object for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Get opens the object for reading.
func (s *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	p, err := s.path(bucket, key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, domain.ErrObjectNotFound
	}
	return f, nil
}
