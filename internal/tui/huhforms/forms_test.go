package huhforms

import (
	"testing"

	"github.com/thenoetrevino/rumbo/internal/models"
)

func TestValidateRequired(t *testing.T) {
	validate := validateRequired("project name")

	if err := validate("Website"); err != nil {
		t.Errorf("Expected no error for non-blank value, got %v", err)
	}

	if err := validate(""); err == nil {
		t.Error("Expected error for empty value")
	}

	if err := validate("   "); err == nil {
		t.Error("Expected error for whitespace-only value")
	}
}

func TestValidateDueDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"blank is allowed", "", false},
		{"whitespace is allowed", "  ", false},
		{"valid date", "2026-03-14", false},
		{"wrong layout", "14-03-2026", true},
		{"not a date", "soon", true},
		{"impossible day", "2026-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDueDate(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error for %q, got %v", tt.input, err)
			}
		})
	}
}

// Forms bind to the caller's variables so values survive the bubbletea
// update cycle; construction itself must not disturb prefilled values.
func TestProjectForm_Builds(t *testing.T) {
	name := "Preset"
	description := "Kept"
	notes := ""
	confirm := true

	form := ProjectForm(&name, &description, &notes, &confirm, "Create this project?")
	if form == nil {
		t.Fatal("Expected a form")
	}
	if cmd := form.Init(); cmd == nil {
		t.Error("Expected an init command from the form")
	}

	if name != "Preset" || description != "Kept" {
		t.Errorf("Expected prefilled values untouched, got name=%q description=%q", name, description)
	}
}

func TestTaskForm_Builds(t *testing.T) {
	name, due, notes := "", "", ""
	status := models.DefaultStatus.String()
	confirm := true

	form := TaskForm(&name, &due, &status, &notes, &confirm, "Add this task?")
	if form == nil {
		t.Fatal("Expected a form")
	}
	if cmd := form.Init(); cmd == nil {
		t.Error("Expected an init command from the form")
	}

	if status != models.DefaultStatus.String() {
		t.Errorf("Expected prefilled status untouched, got %q", status)
	}
}
