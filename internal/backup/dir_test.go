package backup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// mustUpload uploads data and fails the test on error
func mustUpload(t *testing.T, d *DirProvider, data []byte, filename, folder string) string {
	t.Helper()
	id, err := d.Upload(context.Background(), data, filename, folder)
	if err != nil {
		t.Fatalf("Failed to upload %s: %v", filename, err)
	}
	return id
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestUpload_CreatesFolderOnDemand(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	d := NewDirProvider(base)

	mustUpload(t, d, []byte("payload"), "snapshot.gob", "Backups")

	data, err := os.ReadFile(filepath.Join(base, "Backups", "snapshot.gob"))
	if err != nil {
		t.Fatalf("Expected file in created folder, got %v", err)
	}

	if !bytes.Equal(data, []byte("payload")) {
		t.Errorf("Expected 'payload', got '%s'", data)
	}
}

func TestUpload_EmptyFilename(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	if _, err := d.Upload(context.Background(), []byte("x"), "   ", "Backups"); err != ErrEmptyFilename {
		t.Errorf("Expected ErrEmptyFilename, got %v", err)
	}
}

func TestUpload_EmptyFolder(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	if _, err := d.Upload(context.Background(), []byte("x"), "snapshot.gob", ""); err != ErrEmptyFolder {
		t.Errorf("Expected ErrEmptyFolder, got %v", err)
	}
}

func TestUpload_SameNameKeepsID(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	first := mustUpload(t, d, []byte("old"), "snapshot.gob", "Backups")
	second := mustUpload(t, d, []byte("new"), "snapshot.gob", "Backups")

	if first != second {
		t.Errorf("Expected re-upload to keep ID %s, got %s", first, second)
	}

	data, err := d.Download(context.Background(), first)
	if err != nil {
		t.Fatalf("Failed to download: %v", err)
	}

	if !bytes.Equal(data, []byte("new")) {
		t.Errorf("Expected overwritten content 'new', got '%s'", data)
	}
}

func TestUpload_SameNameDifferentFolders(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	first := mustUpload(t, d, []byte("a"), "snapshot.gob", "FolderA")
	second := mustUpload(t, d, []byte("b"), "snapshot.gob", "FolderB")

	if first == second {
		t.Error("Expected distinct IDs for distinct folders")
	}
}

func TestList_FiltersByFolderAndPrefix(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	mustUpload(t, d, []byte("a"), "project_data_1.gob", "Backups")
	mustUpload(t, d, []byte("b"), "project_data_2.gob", "Backups")
	mustUpload(t, d, []byte("c"), "unrelated.gob", "Backups")
	mustUpload(t, d, []byte("d"), "project_data_3.gob", "Elsewhere")

	files, err := d.List(context.Background(), "Backups", "project_data_")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}

	for _, f := range files {
		if f.Name != "project_data_1.gob" && f.Name != "project_data_2.gob" {
			t.Errorf("Unexpected file in listing: %s", f.Name)
		}
	}
}

func TestList_NewestFirst(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	d := NewDirProvider(base)

	mustUpload(t, d, []byte("a"), "project_data_1.gob", "Backups")
	mustUpload(t, d, []byte("b"), "project_data_2.gob", "Backups")
	mustUpload(t, d, []byte("c"), "project_data_3.gob", "Backups")

	// Spread modification times so recency, not name, decides
	now := time.Now()
	for i, name := range []string{"project_data_2.gob", "project_data_3.gob", "project_data_1.gob"} {
		stamp := now.Add(-time.Duration(3-i) * time.Hour)
		if err := os.Chtimes(filepath.Join(base, "Backups", name), stamp, stamp); err != nil {
			t.Fatalf("Failed to set mtime: %v", err)
		}
	}

	files, err := d.List(context.Background(), "Backups", "project_data_")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}

	want := []string{"project_data_1.gob", "project_data_3.gob", "project_data_2.gob"}
	for i, name := range want {
		if files[i].Name != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, files[i].Name)
		}
	}
}

func TestList_SkipsDeletedFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	d := NewDirProvider(base)

	mustUpload(t, d, []byte("a"), "project_data_1.gob", "Backups")
	mustUpload(t, d, []byte("b"), "project_data_2.gob", "Backups")

	if err := os.Remove(filepath.Join(base, "Backups", "project_data_1.gob")); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}

	files, err := d.List(context.Background(), "Backups", "project_data_")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}

	if len(files) != 1 || files[0].Name != "project_data_2.gob" {
		t.Errorf("Expected only project_data_2.gob, got %+v", files)
	}
}

func TestList_EmptyProvider(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	files, err := d.List(context.Background(), "Backups", "project_data_")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}

	if len(files) != 0 {
		t.Errorf("Expected empty listing, got %d files", len(files))
	}
}

func TestDownload_UnknownID(t *testing.T) {
	t.Parallel()

	d := NewDirProvider(t.TempDir())

	if _, err := d.Download(context.Background(), "no-such-id"); err != ErrFileNotFound {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestDownload_DeletedFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	d := NewDirProvider(base)

	id := mustUpload(t, d, []byte("a"), "snapshot.gob", "Backups")

	if err := os.Remove(filepath.Join(base, "Backups", "snapshot.gob")); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}

	if _, err := d.Download(context.Background(), id); err != ErrFileNotFound {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestIDs_StableAcrossProviders(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	first := NewDirProvider(base)
	id := mustUpload(t, first, []byte("payload"), "snapshot.gob", "Backups")

	// A fresh provider over the same directory must resolve the same ID
	second := NewDirProvider(base)
	data, err := second.Download(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to download through new provider: %v", err)
	}

	if !bytes.Equal(data, []byte("payload")) {
		t.Errorf("Expected 'payload', got '%s'", data)
	}
}
