// Package prefs persists the dashboard's durable UI state (theme, language
// and the signed-in username) through a key-value boundary. The file store
// is one implementation of that boundary; tests swap in a memory store.
package prefs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Preferences is the durable part of the application state.
type Preferences struct {
	Theme    string `json:"theme"`    // "light" or "dark"
	Language string `json:"language"` // BCP 47 tag, e.g. "en", "zh"
	Username string `json:"username"` // empty when signed out
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Preferences {
	return Preferences{Theme: "light", Language: "en"}
}

// Store is the persistence boundary for preferences.
type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// FileStore keeps preferences in a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the preferences file, returning defaults when it does not exist.
func (s *FileStore) Load() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), err
	}

	prefs := Defaults()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Defaults(), err
	}
	return prefs, nil
}

// Save writes the preferences file, creating parent directories as needed.
func (s *FileStore) Save(prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryStore keeps preferences in memory.
type MemoryStore struct {
	prefs Preferences
	set   bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns saved preferences, or defaults when nothing was saved.
func (s *MemoryStore) Load() (Preferences, error) {
	if !s.set {
		return Defaults(), nil
	}
	return s.prefs, nil
}

// Save stores preferences in memory.
func (s *MemoryStore) Save(prefs Preferences) error {
	s.prefs = prefs
	s.set = true
	return nil
}
