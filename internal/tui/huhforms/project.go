package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

// ProjectForm builds the create/edit project form. The pointers receive
// values as the user types; confirmTitle names the final question.
func ProjectForm(name, description, notes *string, confirm *bool, confirmTitle string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Validate(validateRequired("project name")).
			Value(name),

		huh.NewText().
			Key("description").
			Title("Description (optional)").
			Placeholder("Enter project description...").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewText().
			Key("notes").
			Title("Notes (optional, markdown)").
			Placeholder("Enter project notes...").
			CharLimit(5000).
			Lines(5).
			Value(notes),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(NewKeyMap())
}

// validateRequired rejects blank input
func validateRequired(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(what + " cannot be empty")
		}
		return nil
	}
}
