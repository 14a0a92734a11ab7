package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("RUMBO_PASSWORD", "hunter2")
	t.Setenv("RUMBO_DATA_FILE", "/tmp/rumbo-test/projects.gob")
	t.Setenv("RUMBO_BACKUP_DIR", "/tmp/rumbo-test/backups")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	if e.Password != "hunter2" {
		t.Errorf("Password = %s, want hunter2", e.Password)
	}
	if e.DataFile != "/tmp/rumbo-test/projects.gob" {
		t.Errorf("DataFile = %s, want /tmp/rumbo-test/projects.gob", e.DataFile)
	}
	if e.BackupDir != "/tmp/rumbo-test/backups" {
		t.Errorf("BackupDir = %s, want /tmp/rumbo-test/backups", e.BackupDir)
	}
}

func TestLoadEnv_Unset(t *testing.T) {
	t.Setenv("RUMBO_PASSWORD", "")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	// Missing password is not an error here; login reports it
	if e.Password != "" {
		t.Errorf("Password = %s, want empty", e.Password)
	}
}

func TestDataFilePath_Override(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.gob")
	e := Env{DataFile: override}

	path, err := e.DataFilePath()
	if err != nil {
		t.Fatalf("DataFilePath() failed: %v", err)
	}
	if path != override {
		t.Errorf("DataFilePath() = %s, want %s", path, override)
	}
}

func TestDataFilePath_Default(t *testing.T) {
	var e Env

	path, err := e.DataFilePath()
	if err != nil {
		t.Fatalf("DataFilePath() failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".rumbo", "projects.gob")) {
		t.Errorf("DataFilePath() = %s, want path ending in .rumbo/projects.gob", path)
	}
}

func TestBackupDirPath_Override(t *testing.T) {
	override := t.TempDir()
	e := Env{BackupDir: override}

	path, err := e.BackupDirPath()
	if err != nil {
		t.Fatalf("BackupDirPath() failed: %v", err)
	}
	if path != override {
		t.Errorf("BackupDirPath() = %s, want %s", path, override)
	}
}

func TestBackupDirPath_Default(t *testing.T) {
	var e Env

	path, err := e.BackupDirPath()
	if err != nil {
		t.Fatalf("BackupDirPath() failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".rumbo", "backups")) {
		t.Errorf("BackupDirPath() = %s, want path ending in .rumbo/backups", path)
	}
}
