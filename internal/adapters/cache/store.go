// Package cache implements the response cache as a single JSON file.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PlanCache using one file holding every entry.
// The file is read and rewritten wholesale on every call; it assumes a single process.
type Store struct {
	path string
}

// NewStore creates a Store persisted at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the cache file.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves the plan cached for prefs.
func (s *Store) Get(prefs domain.Preferences) (*domain.Plan, bool) {
	key, err := Key(prefs)
	if err != nil {
		return nil, false
	}

	raw, ok := s.load()[key]
	if !ok {
		return nil, false
	}

	var plan domain.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false
	}
	return &plan, true
}

// Set stores plan under the key derived from prefs.
func (s *Store) Set(prefs domain.Preferences, plan *domain.Plan) error {
	key, err := Key(prefs)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	value, err := json.Marshal(plan)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	entries := s.load()
	entries[key] = value

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := s.write(data); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", s.path)
	}
	return nil
}

// Clear removes the cache file.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove response cache"), "path", s.path)
	}
	return nil
}

// load reads the store. A missing or corrupt file is an empty map.
func (s *Store) load() map[string]json.RawMessage {
	entries := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return make(map[string]json.RawMessage)
	}
	return entries
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ai-responses-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Key derives the cache key for prefs. Map keys are sorted by encoding/json,
// so equal records always produce the same key.
func Key(prefs domain.Preferences) (string, error) {
	data, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
