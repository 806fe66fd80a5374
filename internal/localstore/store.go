// Package localstore persists small client-side state in a single JSON file,
// the desktop analogue of the browser's local storage. Writers always rewrite
// the complete document so a crash never leaves a partially updated key.
package localstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Well-known keys shared across the client.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyIdentity     = "identity"
	KeyCartItems    = "cart_items"
	KeyCategories   = "site_categories"
)

// Store is a key-value store backed by one JSON object file.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	data map[string]json.RawMessage
}

// Open loads the state file at path, treating a missing or unreadable file as
// empty state. Reads are best-effort; only writes can fail.
func Open(fs afero.Fs, path string) *Store {
	s := &Store{
		fs:   fs,
		path: path,
		data: make(map[string]json.RawMessage),
	}
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return s
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		// Corrupt state file: start over rather than fail every caller.
		return s
	}
	s.data = data
	return s
}

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// GetString returns a string value stored under key, or "" when absent.
func (s *Store) GetString(key string) string {
	raw, ok := s.Get(key)
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// GetJSON unmarshals the value under key into v, reporting whether a
// well-formed value was present.
func (s *Store) GetJSON(key string, v interface{}) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Set stores v under key and rewrites the state file.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// Delete removes key and rewrites the state file. Deleting an absent key is
// a no-op.
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for _, key := range keys {
		if _, ok := s.data[key]; ok {
			delete(s.data, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.flush()
}

// flush writes the whole document. Callers must hold s.mu.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
