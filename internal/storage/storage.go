// Package storage persists Makhzan's records as prefixed JSON files.
// Failures never surface to callers; the in-memory state stays
// authoritative for the session and problems are logged instead.
package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Prefix namespaces every record file so unrelated files in the data
// directory are never touched.
const Prefix = "makhzan_"

// Well-known record keys.
const (
	KeyProducts = "products"
	KeyUIState  = "ui_state"
)

// Store reads and writes JSON records under a single data directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a Store rooted at dir, creating the directory as needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage: data directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file a record key maps to.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, Prefix+key+".json")
}

// Get decodes the record for key into dest. It returns false when the
// record is absent or unreadable; dest is left untouched in that case
// beyond whatever a partial decode wrote.
func (s *Store) Get(key string, dest any) bool {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("storage read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("storage record corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set encodes value and writes it atomically. Write failures are logged
// and swallowed: the caller's in-memory state remains the source of truth.
func (s *Store) Set(key string, value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Error("storage encode failed", "key", key, "error", err)
		return
	}
	target := s.Path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Error("storage write failed", "key", key, "error", err)
		return
	}
	if err := os.Rename(tmp, target); err != nil {
		s.logger.Error("storage rename failed", "key", key, "error", err)
		_ = os.Remove(tmp)
	}
}

// Remove deletes the record for key. Missing records are not an error.
func (s *Store) Remove(key string) {
	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("storage remove failed", "key", key, "error", err)
	}
}

// Clear removes every prefixed record in the data directory, leaving
// unrelated files alone.
func (s *Store) Clear() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("storage clear failed", "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), Prefix) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("storage clear failed", "path", path, "error", err)
		}
	}
}
