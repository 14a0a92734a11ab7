package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/rumbo/internal/app"
	"github.com/thenoetrevino/rumbo/internal/backup"
	"github.com/thenoetrevino/rumbo/internal/config"
	"github.com/thenoetrevino/rumbo/internal/store"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// NewCLI initializes the CLI: config, environment, backing file, services.
// Commands run without an event publisher since nothing listens in a
// one-shot process.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	dataPath, err := env.DataFilePath()
	if err != nil {
		return nil, err
	}

	records := store.New(dataPath)
	if _, err := records.Load(ctx); err != nil {
		if errors.Is(err, store.ErrFileLocked) {
			return nil, err
		}
		// An unreadable backing file resets to an empty store; surface it
		// so the user knows this run starts fresh
		fmt.Fprintf(os.Stderr, "Warning: backing file unreadable, starting empty: %v\n", err)
	}

	backupDir, err := env.BackupDirPath()
	if err != nil {
		return nil, err
	}

	application := app.New(records, backup.NewDirProvider(backupDir), nil, cfg)

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
