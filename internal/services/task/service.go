package task

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/thenoetrevino/rumbo/internal/events"
	"github.com/thenoetrevino/rumbo/internal/models"
)

// Service defines all task-related business operations. Tasks are addressed
// by their zero-based position within the owning project's task list.
type Service interface {
	// Read operations
	GetTasks(ctx context.Context, projectID string) ([]models.Task, error)
	GetTask(ctx context.Context, projectID string, index int) (models.Task, error)

	// Write operations
	AddTask(ctx context.Context, req AddTaskRequest) error
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, projectID string, index int) error
	SetStatus(ctx context.Context, projectID string, index int, status models.Status) error
}

// AddTaskRequest encapsulates data for adding a task to a project
type AddTaskRequest struct {
	ProjectID string
	Name      string
	DueDate   string
	Status    models.Status
	Notes     string
}

// UpdateTaskRequest encapsulates data for updating a task in place.
// Nil fields keep their current values.
type UpdateTaskRequest struct {
	ProjectID string
	Index     int
	Name      *string
	DueDate   *string
	Status    *models.Status
	Notes     *string
}

// recordStore defines the data access methods needed by the task service
// This interface is private to the service layer
type recordStore interface {
	AddTask(projectID string, task models.Task) error
	UpdateTask(projectID string, index int, task models.Task) error
	DeleteTask(projectID string, index int) error
	Task(projectID string, index int) (models.Task, error)
	Project(id string) (*models.Project, error)
	Save(ctx context.Context) error
}

// service implements Service interface with private record store
type service struct {
	records     recordStore
	eventClient events.EventPublisher
	autoSave    bool
}

// NewService creates a new task service. When autoSave is set, every
// successful mutation is persisted to the backing file before returning.
func NewService(records recordStore, eventClient events.EventPublisher, autoSave bool) Service {
	return &service{
		records:     records,
		eventClient: eventClient,
		autoSave:    autoSave,
	}
}

// GetTasks returns the project's tasks in display order
func (s *service) GetTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	p, err := s.records.Project(projectID)
	if err != nil {
		return nil, err
	}

	return p.Tasks, nil
}

// GetTask returns the task at the given position
func (s *service) GetTask(ctx context.Context, projectID string, index int) (models.Task, error) {
	if projectID == "" {
		return models.Task{}, ErrInvalidProjectID
	}
	return s.records.Task(projectID, index)
}

// AddTask appends a task to the project with validation
func (s *service) AddTask(ctx context.Context, req AddTaskRequest) error {
	if req.ProjectID == "" {
		return ErrInvalidProjectID
	}
	if err := validateDueDate(req.DueDate); err != nil {
		return err
	}

	err := s.records.AddTask(req.ProjectID, models.Task{
		Name:    req.Name,
		DueDate: req.DueDate,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	s.publishEvent(events.Event{
		Type:      events.EventStoreChanged,
		ProjectID: req.ProjectID,
		Message:   "Task added to " + req.ProjectID,
	})

	return s.persist(ctx, req.ProjectID)
}

// UpdateTask overwrites the task at the given position. Fields left nil in
// the request keep their current values.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	if req.ProjectID == "" {
		return ErrInvalidProjectID
	}

	current, err := s.records.Task(req.ProjectID, req.Index)
	if err != nil {
		return err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.DueDate != nil {
		if err := validateDueDate(*req.DueDate); err != nil {
			return err
		}
		current.DueDate = *req.DueDate
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	if req.Notes != nil {
		current.Notes = *req.Notes
	}

	if err := s.records.UpdateTask(req.ProjectID, req.Index, current); err != nil {
		return err
	}

	s.publishEvent(events.Event{
		Type:      events.EventStoreChanged,
		ProjectID: req.ProjectID,
		Message:   "Task updated in " + req.ProjectID,
	})

	return s.persist(ctx, req.ProjectID)
}

// DeleteTask removes the task at the given position, shifting later tasks
// down by one
func (s *service) DeleteTask(ctx context.Context, projectID string, index int) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}

	if err := s.records.DeleteTask(projectID, index); err != nil {
		return err
	}

	s.publishEvent(events.Event{
		Type:      events.EventStoreChanged,
		ProjectID: projectID,
		Message:   "Task removed from " + projectID,
	})

	return s.persist(ctx, projectID)
}

// SetStatus changes only the status of the task at the given position
func (s *service) SetStatus(ctx context.Context, projectID string, index int, status models.Status) error {
	return s.UpdateTask(ctx, UpdateTaskRequest{
		ProjectID: projectID,
		Index:     index,
		Status:    &status,
	})
}

// validateDueDate accepts an empty date or one in YYYY-MM-DD form
func validateDueDate(dueDate string) error {
	if dueDate == "" {
		return nil
	}
	if _, err := time.Parse(models.DateFormat, dueDate); err != nil {
		return ErrInvalidDueDate
	}
	return nil
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
