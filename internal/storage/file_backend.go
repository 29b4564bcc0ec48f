package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores each key as a JSON file under a data directory.
// This is the default backend for single-machine installs.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and returns a backend
// rooted at it.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %s: %v", ErrStorageError, dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get reads the blob stored for key.
func (b *FileBackend) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: reading key %s: %v", ErrStorageError, key, err)
	}
	return data, nil
}

// Set writes the blob for key. The write goes through a temp file and a
// rename so a crash mid-write never leaves a truncated collection behind.
func (b *FileBackend) Set(key string, value []byte) error {
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("%w: writing key %s: %v", ErrStorageError, key, err)
	}
	if err := os.Rename(tmp, b.path(key)); err != nil {
		return fmt.Errorf("%w: committing key %s: %v", ErrStorageError, key, err)
	}
	return nil
}

// Remove deletes the blob for key. Removing an absent key is a no-op.
func (b *FileBackend) Remove(key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing key %s: %v", ErrStorageError, key, err)
	}
	return nil
}
