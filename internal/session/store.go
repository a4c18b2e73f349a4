// ABOUTME: Key-value storage backends for session credentials
// ABOUTME: File-backed durable and ephemeral stores plus the Store interface

package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage keys for session credentials.
const (
	KeyToken = "token"
	KeyRole  = "role"
)

// Store is a minimal key-value storage scope. Get returns an empty string
// for absent keys. Clear wipes the entire scope, not just session keys.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
}

// FileStore persists each key as a file in a single directory. Files are
// written with 0600 and the directory with 0700.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// NewDurableStore returns the durable storage scope, a session subdirectory
// under the user config dir ($XDG_CONFIG_HOME/leadctl/session or
// ~/.config/leadctl/session). The scope is its own directory because Clear
// removes it wholesale; the config file one level up must survive a logout.
func NewDurableStore() (*FileStore, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return NewFileStore(filepath.Join(configDir, "leadctl", "session")), nil
}

// NewEphemeralStore returns the ephemeral storage scope under the OS temp
// dir. The platform clears it between boots, which gives the
// "session-only" lifetime of a login without remember-me.
func NewEphemeralStore() *FileStore {
	return NewFileStore(filepath.Join(os.TempDir(), fmt.Sprintf("leadctl-%d", os.Getuid())))
}

// Get reads the value for key. Absent keys return "" with no error.
func (s *FileStore) Get(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes the value for key, creating the scope directory if needed.
func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete removes a single key. Deleting an absent key succeeds silently.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Clear wipes the whole scope, including anything else stored there.
func (s *FileStore) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	return nil
}
