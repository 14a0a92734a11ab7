// Package store owns the in-memory collection of projects and their nested
// tasks, enforces identifier and field invariants, tracks whether unsaved
// changes exist, and persists the whole collection to a single backing file.
package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/thenoetrevino/rumbo/internal/models"
)

// idPrefix is prepended to the numeric counter when minting project IDs.
const idPrefix = "P"

// Store holds every project keyed by ID plus the counter used to mint the
// next ID. The counter only ever increases, so IDs are never reused even
// after deletion.
type Store struct {
	mu       sync.RWMutex
	path     string
	fileLock *flock.Flock
	projects map[string]*models.Project
	nextID   int
	dirty    bool
}

// New creates an empty store backed by the file at path. Nothing is read
// from disk until Load is called.
func New(path string) *Store {
	return &Store{
		path:     path,
		fileLock: flock.New(path + ".lock"),
		projects: make(map[string]*models.Project),
		nextID:   1,
	}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// CreateProject mints a new ID, inserts a project with an empty task list
// and today's date, and returns the new ID.
func (s *Store) CreateProject(name, description, notes string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyProjectName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := idPrefix + strconv.Itoa(s.nextID)
	s.nextID++
	s.projects[id] = &models.Project{
		ID:          id,
		Name:        name,
		Description: description,
		Notes:       notes,
		CreatedDate: time.Now().Format(models.DateFormat),
		Tasks:       []models.Task{},
	}
	s.dirty = true

	return id, nil
}

// EditProject overwrites the three mutable fields of an existing project.
// The ID, created date, and task list are untouched.
func (s *Store) EditProject(id, name, description, notes string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProjectName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return ErrProjectNotFound
	}

	p.Name = name
	p.Description = description
	p.Notes = notes
	s.dirty = true

	return nil
}

// DeleteProject removes a project and all of its tasks. The ID is not
// returned to the pool; the counter never decreases.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrProjectNotFound
	}

	delete(s.projects, id)
	s.dirty = true

	return nil
}

// AddTask appends a task to the project's task list. An empty status is
// replaced with the default; any other unrecognized status is rejected.
func (s *Store) AddTask(projectID string, task models.Task) error {
	if strings.TrimSpace(task.Name) == "" {
		return ErrEmptyTaskName
	}
	if task.Status == "" {
		task.Status = models.DefaultStatus
	}
	if !task.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return ErrProjectNotFound
	}

	p.Tasks = append(p.Tasks, task)
	s.dirty = true

	return nil
}

// UpdateTask overwrites the task at the given position in the project's
// task list. Positions are zero-based.
func (s *Store) UpdateTask(projectID string, index int, task models.Task) error {
	if strings.TrimSpace(task.Name) == "" {
		return ErrEmptyTaskName
	}
	if task.Status == "" {
		task.Status = models.DefaultStatus
	}
	if !task.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return ErrProjectNotFound
	}
	if index < 0 || index >= len(p.Tasks) {
		return ErrTaskNotFound
	}

	p.Tasks[index] = task
	s.dirty = true

	return nil
}

// DeleteTask removes the task at the given position, shifting later tasks
// down by one.
func (s *Store) DeleteTask(projectID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return ErrProjectNotFound
	}
	if index < 0 || index >= len(p.Tasks) {
		return ErrTaskNotFound
	}

	p.Tasks = append(p.Tasks[:index], p.Tasks[index+1:]...)
	s.dirty = true

	return nil
}

// Progress returns the project's completion percentage.
func (s *Store) Progress(projectID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[projectID]
	if !ok {
		return 0, ErrProjectNotFound
	}

	return p.Progress(), nil
}

// Project returns a copy of the project with the given ID.
func (s *Store) Project(id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}

	return p.Clone(), nil
}

// Projects returns copies of every project, ordered by the numeric part of
// their IDs so creation order is preserved in listings.
func (s *Store) Projects() []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Project, 0, len(s.projects))
	for _, id := range sortedIDs(s.projects) {
		out = append(out, s.projects[id].Clone())
	}

	return out
}

// Task returns a copy of the task at the given position.
func (s *Store) Task(projectID string, index int) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[projectID]
	if !ok {
		return models.Task{}, ErrProjectNotFound
	}
	if index < 0 || index >= len(p.Tasks) {
		return models.Task{}, ErrTaskNotFound
	}

	return p.Tasks[index], nil
}

// Count returns the number of projects.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.projects)
}

// NextIDNum returns the numeric suffix the next created project will receive.
func (s *Store) NextIDNum() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID
}

// HasUnsavedChanges reports whether any mutation has happened since the
// last successful Save or Load.
func (s *Store) HasUnsavedChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dirty
}

// sortedIDs orders project IDs by numeric suffix, falling back to plain
// string order for IDs that did not come from our counter.
func sortedIDs(projects map[string]*models.Project) []string {
	ids := make([]string, 0, len(projects))
	for id := range projects {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, aok := idNum(ids[i])
		b, bok := idNum(ids[j])
		if aok && bok && a != b {
			return a < b
		}
		if aok != bok {
			return aok
		}
		return ids[i] < ids[j]
	})

	return ids
}

func idNum(id string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
	return n, err == nil
}

// normalize makes older or hand-edited records safe to use: the ID inside
// each record is reasserted from its map key and nil task lists become
// empty. Missing notes fields already decode to empty strings.
func normalize(projects map[string]*models.Project) map[string]*models.Project {
	if projects == nil {
		return make(map[string]*models.Project)
	}

	for id, p := range projects {
		if p == nil {
			p = &models.Project{}
			projects[id] = p
		}
		p.ID = id
		if p.Tasks == nil {
			p.Tasks = []models.Task{}
		}
	}

	return projects
}
