package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/thenoetrevino/rumbo/internal/models"
)

func TestExportJSON_Shape(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	populate(t, s)

	data, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	if _, ok := top["projects"]; !ok {
		t.Error("Expected top-level 'projects' key")
	}

	if _, ok := top["next_project_id_num"]; !ok {
		t.Error("Expected top-level 'next_project_id_num' key")
	}

	var projects map[string]map[string]any
	if err := json.Unmarshal(top["projects"], &projects); err != nil {
		t.Fatalf("Failed to parse projects: %v", err)
	}

	p, ok := projects["P1"]
	if !ok {
		t.Fatal("Expected project keyed by 'P1'")
	}

	for _, key := range []string{"name", "description", "notes", "created_date", "tasks"} {
		if _, ok := p[key]; !ok {
			t.Errorf("Expected project field %q in export", key)
		}
	}

	// The ID lives in the map key, not inside the record
	if _, ok := p["id"]; ok {
		t.Error("Expected no 'id' field inside exported project")
	}
}

func TestImportJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	original := newTestStore(t)
	populate(t, original)

	data, err := original.ExportJSON()
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	imported := newTestStore(t)
	if err := imported.ImportJSON(data); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(original.Projects(), imported.Projects()) {
		t.Errorf("Expected imported projects to equal originals\noriginal: %+v\nimported: %+v",
			original.Projects(), imported.Projects())
	}

	if imported.NextIDNum() != original.NextIDNum() {
		t.Errorf("Expected counter %d, got %d", original.NextIDNum(), imported.NextIDNum())
	}

	if !imported.HasUnsavedChanges() {
		t.Error("Expected store dirty after import")
	}
}

func TestImportJSON_MissingCounter(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "Existing")

	err := s.ImportJSON([]byte(`{"projects": {}}`))

	if err == nil {
		t.Fatal("Expected validation error for missing counter")
	}

	if err != ErrInvalidImport {
		t.Errorf("Expected ErrInvalidImport, got %v", err)
	}

	if s.Count() != 1 {
		t.Errorf("Expected store untouched, got %d projects", s.Count())
	}
}

func TestImportJSON_MissingProjects(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	err := s.ImportJSON([]byte(`{"next_project_id_num": 5}`))

	if err != ErrInvalidImport {
		t.Errorf("Expected ErrInvalidImport, got %v", err)
	}

	if s.NextIDNum() != 1 {
		t.Errorf("Expected counter untouched, got %d", s.NextIDNum())
	}
}

func TestImportJSON_MalformedPayload(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "Existing")

	tests := []string{`{not json`, `[]`, `"just a string"`}

	for _, payload := range tests {
		if err := s.ImportJSON([]byte(payload)); err == nil {
			t.Errorf("Expected error for payload %q", payload)
		}
	}

	if s.Count() != 1 {
		t.Errorf("Expected store untouched after rejected imports, got %d projects", s.Count())
	}
}

func TestImportJSON_ReplacesExistingState(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "Old Project")

	payload := `{
		"projects": {
			"P7": {
				"name": "Imported",
				"description": "from backup",
				"notes": "",
				"created_date": "2025-03-10",
				"tasks": [
					{"name": "restored task", "due_date": "2025-04-01", "status": "In Progress", "notes": ""}
				]
			}
		},
		"next_project_id_num": 8
	}`

	if err := s.ImportJSON([]byte(payload)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s.Count() != 1 {
		t.Fatalf("Expected exactly the imported project, got %d", s.Count())
	}

	if _, err := s.Project("P1"); err != ErrProjectNotFound {
		t.Errorf("Expected old project gone, got %v", err)
	}

	p, err := s.Project("P7")
	if err != nil {
		t.Fatalf("Failed to get imported project: %v", err)
	}

	if p.Name != "Imported" {
		t.Errorf("Expected name 'Imported', got '%s'", p.Name)
	}

	if p.Tasks[0].Status != models.StatusInProgress {
		t.Errorf("Expected status 'In Progress', got '%s'", p.Tasks[0].Status)
	}

	if s.NextIDNum() != 8 {
		t.Errorf("Expected counter 8, got %d", s.NextIDNum())
	}
}

func TestImportJSON_NormalizesLegacyRecords(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	// Older exports lack notes fields and may carry null due dates
	payload := `{
		"projects": {
			"P1": {
				"name": "Legacy",
				"description": "no notes field",
				"created_date": "2023-06-15",
				"tasks": [
					{"name": "old task", "due_date": null, "status": "Not Started"}
				]
			},
			"P2": {
				"name": "No tasks field",
				"description": "",
				"created_date": "2023-07-01"
			}
		},
		"next_project_id_num": 3
	}`

	if err := s.ImportJSON([]byte(payload)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	p1, err := s.Project("P1")
	if err != nil {
		t.Fatalf("Failed to get P1: %v", err)
	}

	if p1.Notes != "" {
		t.Errorf("Expected missing project notes to default empty, got '%s'", p1.Notes)
	}

	if p1.Tasks[0].Notes != "" {
		t.Errorf("Expected missing task notes to default empty, got '%s'", p1.Tasks[0].Notes)
	}

	if p1.Tasks[0].DueDate != "" {
		t.Errorf("Expected null due date to default empty, got '%s'", p1.Tasks[0].DueDate)
	}

	p2, err := s.Project("P2")
	if err != nil {
		t.Fatalf("Failed to get P2: %v", err)
	}

	if p2.Tasks == nil {
		t.Error("Expected missing task list normalized to empty")
	}

	if p2.ID != "P2" {
		t.Errorf("Expected ID from map key, got '%s'", p2.ID)
	}
}

func TestImportJSON_CounterFloor(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if err := s.ImportJSON([]byte(`{"projects": {}, "next_project_id_num": 0}`)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s.NextIDNum() != 1 {
		t.Errorf("Expected counter floored to 1, got %d", s.NextIDNum())
	}

	id, err := s.CreateProject("First", "", "")
	if err != nil {
		t.Fatalf("Failed to create: %v", err)
	}

	if id != "P1" {
		t.Errorf("Expected 'P1', got '%s'", id)
	}
}
