// Package persistence is the thin, out-of-scope file wrapper named in the
// external interface contract: it has no knowledge of the graph's internal
// structure, only of reading and writing the structured-text blob that
// engine.Graph.ExportBackup / engine.ImportBackup produce and consume.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store saves and loads structured-text backup blobs to and from a single
// file path. It holds no file handle between calls: each call opens,
// does its I/O, and closes.
type Store struct {
	path string
	log  *zap.SugaredLogger
}

// NewStore builds a Store rooted at path, logging through log.
func NewStore(path string, log *zap.SugaredLogger) *Store {
	return &Store{path: path, log: log}
}

// Save writes blob to the store's path, atomically: it writes to a
// temporary file in the same directory and renames it into place, so a
// crash mid-write never leaves a half-written backup behind.
func (s *Store) Save(blob string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("persistence: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".loom-db-*.tmp")
	if err != nil {
		return fmt.Errorf("persistence: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(blob); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("persistence: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("persistence: close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("persistence: rename into place: %w", err)
	}

	if s.log != nil {
		s.log.Infow("saved backup", "path", s.path, "bytes", len(blob))
	}
	return nil
}

// Load reads the blob at the store's path. A missing file is reported as an
// ordinary *os.PathError the caller can check with os.IsNotExist; it is not
// folded into the codec's "malformed input" sentinel, since the two
// conditions call for different caller responses (first run vs. corruption).
func (s *Store) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	if s.log != nil {
		s.log.Infow("loaded backup", "path", s.path, "bytes", len(raw))
	}
	return string(raw), nil
}
