package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/rumbo/internal/models"
	"github.com/thenoetrevino/rumbo/internal/store"
)

// SetupCLITest points the data file, backup directory, and config directory
// at temp paths so commands never touch real user data, and returns a store
// bound to the same backing file for seeding and verification.
//
// Commands build their own store from the environment on every run, so the
// returned store's in-memory view goes stale after a command mutates data;
// call ReloadStore before asserting on post-command state.
func SetupCLITest(t *testing.T) *store.Store {
	t.Helper()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "projects.gob")

	t.Setenv("RUMBO_DATA_FILE", dataFile)
	t.Setenv("RUMBO_BACKUP_DIR", filepath.Join(dir, "backups"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("RUMBO_PASSWORD", "test-password")

	return store.New(dataFile)
}

// ReloadStore re-reads the backing file into the store, replacing its
// in-memory state with whatever the last command persisted
func ReloadStore(t *testing.T, s *store.Store) {
	t.Helper()

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Failed to reload store: %v", err)
	}
}

// CreateTestProject creates a project directly in the store, persists it,
// and returns its ID
func CreateTestProject(t *testing.T, s *store.Store, name string) string {
	t.Helper()

	id, err := s.CreateProject(name, "Test description", "")
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Failed to save test project: %v", err)
	}

	return id
}

// CreateTestTask appends a task to the project, persists it, and returns the
// task's 1-based position
func CreateTestTask(t *testing.T, s *store.Store, projectID, name string) int {
	t.Helper()

	err := s.AddTask(projectID, models.Task{Name: name, Status: models.DefaultStatus})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Failed to save test task: %v", err)
	}

	p, err := s.Project(projectID)
	if err != nil {
		t.Fatalf("Failed to read back test project: %v", err)
	}

	return len(p.Tasks)
}
