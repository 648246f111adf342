// Package prefs implements the persistent preference store and the settings schema.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/util"
)

// FileName is the store's file inside the data directory
const FileName = "preferences.json"

type storeFile struct {
	Preferences map[string]Entry `json:"preferences"`
}

// FileStore implements types.PreferenceStore on a single JSON document.
// Every mutation rewrites the document atomically.
type FileStore struct {
	path string

	mu   sync.RWMutex
	data types.Snapshot
}

var _ types.PreferenceStore = (*FileStore)(nil)

// Open loads the store at dataDir/preferences.json, creating an empty one if absent
func Open(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share", "ryu")
	}

	s := &FileStore{
		path: filepath.Join(dataDir, FileName),
		data: types.Snapshot{},
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var doc storeFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse preferences at %s: %w", s.path, err)
	}
	snap, err := DecodeEntries(doc.Preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preferences at %s: %w", s.path, err)
	}
	s.data = snap
	return s, nil
}

// Path returns the location of the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value for key and whether it exists
func (s *FileStore) Get(key string) (types.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// All returns a copy of every entry
func (s *FileStore) All() (types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone(), nil
}

// Set stores v under key and persists the store
func (s *FileStore) Set(key string, v types.Value) error {
	return s.Batch(func(w types.PreferenceWriter) error {
		return w.Set(key, v)
	})
}

// Remove deletes key; a missing key is not an error
func (s *FileStore) Remove(key string) error {
	return s.Batch(func(w types.PreferenceWriter) error {
		return w.Remove(key)
	})
}

// Clear deletes every entry
func (s *FileStore) Clear() error {
	return s.Batch(func(w types.PreferenceWriter) error {
		return w.Clear()
	})
}

// Batch applies fn to a copy of the store and persists the copy once.
// If fn or the write fails, memory and disk keep their previous state.
// fn must not call methods on s.
func (s *FileStore) Batch(fn func(w types.PreferenceWriter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &snapshotWriter{snap: s.data.Clone()}
	if err := fn(w); err != nil {
		return err
	}
	if !w.dirty {
		return nil
	}
	if err := s.persist(w.snap); err != nil {
		return err
	}
	s.data = w.snap
	return nil
}

func (s *FileStore) persist(snap types.Snapshot) error {
	entries, err := EncodeEntries(snap)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(storeFile{Preferences: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := util.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

type snapshotWriter struct {
	snap  types.Snapshot
	dirty bool
}

func (w *snapshotWriter) Set(key string, v types.Value) error {
	if key == "" {
		return fmt.Errorf("empty preference key")
	}
	if v.IsZero() {
		return fmt.Errorf("no value for %q", key)
	}
	w.snap[key] = v
	w.dirty = true
	return nil
}

func (w *snapshotWriter) Remove(key string) error {
	if _, ok := w.snap[key]; ok {
		delete(w.snap, key)
		w.dirty = true
	}
	return nil
}

func (w *snapshotWriter) Clear() error {
	if len(w.snap) > 0 {
		w.snap = types.Snapshot{}
		w.dirty = true
	}
	return nil
}
