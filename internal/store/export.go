package store

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/rumbo/internal/models"
)

// jsonDocument mirrors the backing document in the interchange format. The
// key names match the historical backup files so old exports import cleanly.
type jsonDocument struct {
	Projects         map[string]*models.Project `json:"projects"`
	NextProjectIDNum int                        `json:"next_project_id_num"`
}

// ExportJSON serializes the whole store as indented UTF-8 JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := jsonDocument{Projects: s.projects, NextProjectIDNum: s.nextID}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	return data, nil
}

// ImportJSON replaces the entire store with the decoded payload and marks
// it dirty. Both top-level fields must be present; in-memory state is left
// untouched when the payload is rejected.
func (s *Store) ImportJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse import data: %w", err)
	}

	projectsRaw, haveProjects := raw["projects"]
	counterRaw, haveCounter := raw["next_project_id_num"]
	if !haveProjects || !haveCounter {
		return ErrInvalidImport
	}

	var projects map[string]*models.Project
	if err := json.Unmarshal(projectsRaw, &projects); err != nil {
		return fmt.Errorf("failed to parse import data: %w", err)
	}

	var counter int
	if err := json.Unmarshal(counterRaw, &counter); err != nil {
		return fmt.Errorf("failed to parse import data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = normalize(projects)
	s.nextID = counter
	if s.nextID < 1 {
		s.nextID = 1
	}
	s.dirty = true

	return nil
}
