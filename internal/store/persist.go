package store

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/rumbo/internal/models"
)

// Lock acquisition bounds shared by Save and Load.
const (
	lockTimeout  = 3 * time.Second
	lockInterval = 100 * time.Millisecond
)

// document is the on-disk shape of the whole store: the project mapping
// plus the counter, nothing else.
type document struct {
	Projects         map[string]*models.Project
	NextProjectIDNum int
}

// Save serializes the entire store to the backing file, replacing it
// atomically. The dirty flag is cleared only when the write succeeds.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lockFile(ctx); err != nil {
		return err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	data, err := s.encodeLocked()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write backing file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace backing file: %w", err)
	}

	s.dirty = false

	return nil
}

// Load reads the backing file if present. A missing or empty file leaves a
// fresh empty store. A read or decode failure also resets the store to
// empty (counter back to 1) and returns the error, so stale records are
// never kept alongside an unreadable file. The returned bool reports
// whether a file was found and successfully parsed.
func (s *Store) Load(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lockFile(ctx); err != nil {
		return false, err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.reset()
		return false, nil
	}
	if err != nil {
		s.reset()
		return false, fmt.Errorf("failed to read backing file: %w", err)
	}
	if len(data) == 0 {
		s.reset()
		return false, nil
	}

	var doc document
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		s.reset()
		return false, fmt.Errorf("failed to decode backing file: %w", err)
	}

	s.projects = normalize(doc.Projects)
	s.nextID = doc.NextProjectIDNum
	if s.nextID < 1 {
		s.nextID = 1
	}
	s.dirty = false

	return true, nil
}

// Snapshot returns the current state in the backing-file format, without
// touching the backing file itself.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.encodeLocked()
}

// Restore replaces all state with a previously captured snapshot and marks
// the store dirty. A snapshot that fails to decode leaves state untouched.
func (s *Store) Restore(data []byte) error {
	var doc document
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = normalize(doc.Projects)
	s.nextID = doc.NextProjectIDNum
	if s.nextID < 1 {
		s.nextID = 1
	}
	s.dirty = true

	return nil
}

// Close removes the sidecar lock file.
func (s *Store) Close() error {
	_ = os.Remove(s.path + ".lock")
	return nil
}

// encodeLocked serializes current state in the backing-file format.
// Callers must hold the mutex.
func (s *Store) encodeLocked() ([]byte, error) {
	var buf bytes.Buffer
	doc := document{Projects: s.projects, NextProjectIDNum: s.nextID}
	if err := gob.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode store: %w", err)
	}

	return buf.Bytes(), nil
}

// reset discards all in-memory state, returning the store to fresh.
func (s *Store) reset() {
	s.projects = make(map[string]*models.Project)
	s.nextID = 1
	s.dirty = false
}

// lockFile takes the advisory lock shared with any other rumbo process
// pointed at the same backing file.
func (s *Store) lockFile(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockInterval)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileLocked, err)
	}
	if !locked {
		return ErrFileLocked
	}

	return nil
}
