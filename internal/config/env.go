package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds settings read from the process environment rather than the
// YAML config file. The login password is deliberately never stored in a file.
type Env struct {
	Password  string `env:"RUMBO_PASSWORD"`
	DataFile  string `env:"RUMBO_DATA_FILE"`
	BackupDir string `env:"RUMBO_BACKUP_DIR"`
}

// LoadEnv reads .env if present, then parses RUMBO_* variables.
// Real environment variables win over .env entries.
func LoadEnv() (Env, error) {
	// .env file is optional
	_ = godotenv.Load()

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// DataFilePath returns the backing file location, honoring RUMBO_DATA_FILE
func (e Env) DataFilePath() (string, error) {
	if e.DataFile != "" {
		return e.DataFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".rumbo", "projects.gob"), nil
}

// BackupDirPath returns the backup destination, honoring RUMBO_BACKUP_DIR
func (e Env) BackupDirPath() (string, error) {
	if e.BackupDir != "" {
		return e.BackupDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".rumbo", "backups"), nil
}
