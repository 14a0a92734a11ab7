package project

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/thenoetrevino/rumbo/internal/events"
	"github.com/thenoetrevino/rumbo/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetProgress(ctx context.Context, id string) (int, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id string) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
	Notes       string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields keep their current values.
type UpdateProjectRequest struct {
	ID          string
	Name        *string
	Description *string
	Notes       *string
}

// recordStore defines the data access methods needed by the project service
// This interface is private to the service layer
type recordStore interface {
	CreateProject(name, description, notes string) (string, error)
	EditProject(id, name, description, notes string) error
	DeleteProject(id string) error
	Project(id string) (*models.Project, error)
	Projects() []*models.Project
	Progress(id string) (int, error)
	Save(ctx context.Context) error
}

// service implements Service interface with private record store
type service struct {
	records     recordStore
	eventClient events.EventPublisher
	autoSave    bool
}

// NewService creates a new project service. When autoSave is set, every
// successful mutation is persisted to the backing file before returning.
func NewService(records recordStore, eventClient events.EventPublisher, autoSave bool) Service {
	return &service{
		records:     records,
		eventClient: eventClient,
		autoSave:    autoSave,
	}
}

// GetAllProjects retrieves all projects in creation order
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.records.Projects(), nil
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	return s.records.Project(id)
}

// GetProgress returns the project's completion percentage
func (s *service) GetProgress(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, ErrInvalidProjectID
	}
	return s.records.Progress(id)
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	id, err := s.records.CreateProject(req.Name, req.Description, req.Notes)
	if err != nil {
		return nil, err
	}

	project, err := s.records.Project(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(events.Event{
		Type:      events.EventStoreChanged,
		ProjectID: id,
		Message:   "Project created: " + id,
	})

	if err := s.persist(ctx, id); err != nil {
		return nil, err
	}

	return project, nil
}

// UpdateProject updates an existing project. Fields left nil in the request
// keep their current values.
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) error {
	if req.ID == "" {
		return ErrInvalidProjectID
	}

	current, err := s.records.Project(req.ID)
	if err != nil {
		return err
	}

	name := current.Name
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return ErrEmptyName
		}
		name = *req.Name
	}

	description := current.Description
	if req.Description != nil {
		description = *req.Description
	}

	notes := current.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := s.records.EditProject(req.ID, name, description, notes); err != nil {
		return err
	}

	s.publishEvent(events.Event{
		Type:      events.EventStoreChanged,
		ProjectID: req.ID,
		Message:   "Project updated: " + req.ID,
	})

	return s.persist(ctx, req.ID)
}

// DeleteProject removes a project and all of its tasks
func (s *service) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidProjectID
	}

	if err := s.records.DeleteProject(id); err != nil {
		return err
	}

	s.publishEvent(events.Event{
		Type:      events.EventStoreChanged,
		ProjectID: id,
		Message:   "Project deleted: " + id,
	})

	return s.persist(ctx, id)
}

// persist writes the store to the backing file when auto-save is on. The
// in-memory mutation is kept on failure so the dirty flag stays set and a
// retry remains possible.
func (s *service) persist(ctx context.Context, projectID string) error {
	if !s.autoSave {
		return nil
	}

	if err := s.records.Save(ctx); err != nil {
		s.publishEvent(events.Event{
			Type:      events.EventSaveFailed,
			ProjectID: projectID,
			Message:   err.Error(),
		})
		return fmt.Errorf("failed to save data: %w", err)
	}

	s.publishEvent(events.Event{
		Type:      events.EventSaved,
		ProjectID: projectID,
		Message:   "Data saved",
	})

	return nil
}

// publishEvent publishes a store event
func (s *service) publishEvent(event events.Event) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(event); err != nil {
		log.Printf("failed to send event for project %s: %v", event.ProjectID, err)
	}
}
