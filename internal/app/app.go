package app

import (
	"github.com/thenoetrevino/rumbo/internal/backup"
	"github.com/thenoetrevino/rumbo/internal/config"
	"github.com/thenoetrevino/rumbo/internal/events"
	projectservice "github.com/thenoetrevino/rumbo/internal/services/project"
	taskservice "github.com/thenoetrevino/rumbo/internal/services/task"
	"github.com/thenoetrevino/rumbo/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Record store (direct data access)
	records *store.Store

	// Event system for live updates
	eventClient events.EventPublisher

	// Loaded configuration
	Config *config.Config

	// Service layer (business logic)
	ProjectService projectservice.Service
	TaskService    taskservice.Service
	BackupService  backup.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(records *store.Store, provider backup.Provider, eventClient events.EventPublisher, cfg *config.Config) *App {
	autoSave := cfg.Preferences.AutoSaveEnabled()

	return &App{
		records:        records,
		eventClient:    eventClient,
		Config:         cfg,
		ProjectService: projectservice.NewService(records, eventClient, autoSave),
		TaskService:    taskservice.NewService(records, eventClient, autoSave),
		BackupService:  backup.NewService(records, provider, cfg.Preferences.BackupFolder, eventClient),
	}
}

// Records returns the underlying store for direct data access.
// Persistence and interchange operations go through here; everything else
// should go through services.
func (a *App) Records() *store.Store {
	return a.records
}

// Events returns the event publisher so presentation code can listen for
// store changes.
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close releases the store's file lock and shuts down the event system.
func (a *App) Close() error {
	if a.eventClient != nil {
		_ = a.eventClient.Close()
	}

	return a.records.Close()
}
