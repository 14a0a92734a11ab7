package backup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/thenoetrevino/rumbo/internal/events"
)

// Every pushed snapshot is named snapshotPrefix + timestamp + ".gob";
// Snapshots filters on the prefix.
const (
	snapshotPrefix     = "project_data_"
	snapshotTimeFormat = "20060102_150405"
)

// Service defines all backup operations
type Service interface {
	// Push captures the current store state and uploads it as a new
	// timestamped snapshot
	Push(ctx context.Context) (FileInfo, error)

	// Snapshots lists available snapshots, newest first
	Snapshots(ctx context.Context) ([]FileInfo, error)

	// Pull replaces all store state with the chosen snapshot and
	// persists it
	Pull(ctx context.Context, fileID string) error
}

// recordStore defines the data access methods needed by the backup service
// This interface is private to the service layer
type recordStore interface {
	Snapshot() ([]byte, error)
	Restore(data []byte) error
	Save(ctx context.Context) error
}

// service implements Service interface with private record store
type service struct {
	records     recordStore
	provider    Provider
	folder      string
	eventClient events.EventPublisher
}

// NewService creates a backup service storing snapshots under folder on
// the given provider.
func NewService(records recordStore, provider Provider, folder string, eventClient events.EventPublisher) Service {
	return &service{
		records:     records,
		provider:    provider,
		folder:      folder,
		eventClient: eventClient,
	}
}

// Push uploads the current store state as a new snapshot
func (s *service) Push(ctx context.Context) (FileInfo, error) {
	data, err := s.records.Snapshot()
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to capture snapshot: %w", err)
	}

	now := time.Now()
	name := snapshotPrefix + now.Format(snapshotTimeFormat) + ".gob"

	id, err := s.provider.Upload(ctx, data, name, s.folder)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return FileInfo{ID: id, Name: name, ModifiedTime: now}, nil
}

// Snapshots lists available snapshots, newest first
func (s *service) Snapshots(ctx context.Context) ([]FileInfo, error) {
	files, err := s.provider.List(ctx, s.folder, snapshotPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return files, nil
}

// Pull downloads a snapshot, replaces all store state with it, and saves
// the result to the backing file
func (s *service) Pull(ctx context.Context, fileID string) error {
	data, err := s.provider.Download(ctx, fileID)
	if err != nil {
		if err == ErrFileNotFound {
			return err
		}
		return fmt.Errorf("failed to download snapshot: %w", err)
	}

	if err := s.records.Restore(data); err != nil {
		return err
	}

	s.publishEvent(events.Event{
		Type:    events.EventStoreChanged,
		Message: "Snapshot restored",
	})

	if err := s.records.Save(ctx); err != nil {
		s.publishEvent(events.Event{
			Type:    events.EventSaveFailed,
			Message: err.Error(),
		})
		return fmt.Errorf("failed to save data: %w", err)
	}

	s.publishEvent(events.Event{
		Type:    events.EventSaved,
		Message: "Data saved",
	})

	return nil
}

// publishEvent publishes a store event
func (s *service) publishEvent(event events.Event) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(event); err != nil {
		log.Printf("failed to send backup event: %v", err)
	}
}
