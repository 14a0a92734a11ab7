package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/rumbo/internal/app"
	"github.com/thenoetrevino/rumbo/internal/backup"
	"github.com/thenoetrevino/rumbo/internal/config"
	"github.com/thenoetrevino/rumbo/internal/events"
	"github.com/thenoetrevino/rumbo/internal/store"
	"github.com/thenoetrevino/rumbo/internal/tui"
)

// saveTimeout bounds the final save attempt during signal shutdown.
const saveTimeout = 3 * time.Second

// Launch wires the store, services, and event bus together and runs the
// interactive interface until it quits or a shutdown signal arrives.
func Launch() error {
	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	dataFile, err := env.DataFilePath()
	if err != nil {
		return err
	}

	records := store.New(dataFile)

	// A locked backing file means another instance owns it; anything else
	// (missing file, unreadable file) starts an empty session with a warning.
	var loadWarning string
	if _, err := records.Load(ctx); err != nil {
		if errors.Is(err, store.ErrFileLocked) {
			return fmt.Errorf("cannot open %s: %w", dataFile, err)
		}
		loadWarning = err.Error()
	}

	backupDir, err := env.BackupDirPath()
	if err != nil {
		return err
	}

	bus := events.NewBus()

	application := app.New(records, backup.NewDirProvider(backupDir), bus, cfg)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	model := tui.InitialModel(application, env.Password, loadWarning)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}

	case <-ctx.Done():
		// The quit keys save through the TUI; a signal bypasses that
		// path, so unsaved changes get one last write here.
		slog.Info("shutdown signal received, cleaning up")
		if records.HasUnsavedChanges() {
			saveCtx, saveCancel := context.WithTimeout(context.Background(), saveTimeout)
			if err := records.Save(saveCtx); err != nil {
				slog.Error("failed to save on shutdown", "error", err)
			}
			saveCancel()
		}
		<-errChan
	}

	return nil
}
