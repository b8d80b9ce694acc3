package remindlib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultStoreKey is the single key under which the whole reminder
// collection is persisted.
const DefaultStoreKey = "reminders"

// ConfigDirEnv overrides the default configuration directory.
const ConfigDirEnv = "REMINDCTL_CONFIG_DIR"

// Store is the opaque key/value persistence backend. The registry uses it
// under one fixed key with whole-blob overwrite semantics.
type Store interface {
	// Get returns the blob stored under key, or (nil, nil) when absent.
	Get(key string) ([]byte, error)
	// Set overwrites the blob stored under key.
	Set(key string, blob []byte) error
	// Delete removes the blob stored under key. Deleting an absent key
	// is not an error.
	Delete(key string) error
}

// DefaultConfigDir returns the directory holding remindctl state files.
// It honors the REMINDCTL_CONFIG_DIR environment variable.
func DefaultConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "remindctl"), nil
}

// FileStore persists blobs as files under a directory, one file per key.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates a FileStore rooted at dir on the given filesystem.
// Tests pass an afero.NewMemMapFs.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the file contents for key, or (nil, nil) when the file
// does not exist.
func (s *FileStore) Get(key string) ([]byte, error) {
	blob, err := afero.ReadFile(s.fs, s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path(key), err)
	}
	return blob, nil
}

// Set writes the blob for key, creating the directory if needed.
func (s *FileStore) Set(key string, blob []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), blob, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path(key), err)
	}
	return nil
}

// Delete removes the file for key, ignoring a missing file.
func (s *FileStore) Delete(key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", s.path(key), err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
