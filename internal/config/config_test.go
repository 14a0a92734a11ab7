package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.CreateProject != "n" {
		t.Errorf("Default CreateProject key = %s, want n", defaults.CreateProject)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.OpenProject != "enter" {
		t.Errorf("Default OpenProject key = %s, want enter", defaults.OpenProject)
	}
}

func TestDefaultPreferences(t *testing.T) {
	defaults := DefaultPreferences()

	if !defaults.AutoSaveEnabled() {
		t.Error("Default AutoSave should be enabled")
	}
	if defaults.BackupFolder != "ProjectManager_Backups" {
		t.Errorf("Default BackupFolder = %s, want ProjectManager_Backups", defaults.BackupFolder)
	}
	if defaults.DescriptionWidth != 50 {
		t.Errorf("Default DescriptionWidth = %d, want 50", defaults.DescriptionWidth)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if !cfg.Preferences.AutoSaveEnabled() {
		t.Error("Loaded config should default AutoSave to enabled")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir with config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "rumbo")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `preferences:
  auto_save: false
  description_width: 30
key_mappings:
  quit: "x"
  create_project: "c"
  add_task: "t"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.CreateProject != "c" {
		t.Errorf("Loaded CreateProject key = %s, want c", cfg.KeyMappings.CreateProject)
	}
	if cfg.KeyMappings.AddTask != "t" {
		t.Errorf("Loaded AddTask key = %s, want t", cfg.KeyMappings.AddTask)
	}

	// Explicit auto_save: false must survive default filling
	if cfg.Preferences.AutoSaveEnabled() {
		t.Error("Loaded AutoSave = enabled, want disabled")
	}
	if cfg.Preferences.DescriptionWidth != 30 {
		t.Errorf("Loaded DescriptionWidth = %d, want 30", cfg.Preferences.DescriptionWidth)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditProject != "e" {
		t.Errorf("Loaded EditProject key = %s, want e (default)", cfg.KeyMappings.EditProject)
	}
	if cfg.Preferences.BackupFolder != "ProjectManager_Backups" {
		t.Errorf("Loaded BackupFolder = %s, want default", cfg.Preferences.BackupFolder)
	}
}

func TestSaveConfig(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:          "x",
			CreateProject: "c",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	// Save config
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tempDir, "rumbo", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	// Load it back
	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	// Verify values match
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.CreateProject != "c" {
		t.Errorf("Reloaded CreateProject key = %s, want c", cfg2.KeyMappings.CreateProject)
	}
}
