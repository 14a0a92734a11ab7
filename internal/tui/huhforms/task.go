package huhforms

import (
	"fmt"
	"strings"
	"time"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/rumbo/internal/models"
)

// TaskForm builds the add/edit task form. Status options come from the
// model's status set; the due date accepts YYYY-MM-DD or blank for none.
func TaskForm(name, dueDate, status, notes *string, confirm *bool, confirmTitle string) *huh.Form {
	statuses := models.Statuses()
	options := make([]huh.Option[string], len(statuses))
	for i, s := range statuses {
		options[i] = huh.NewOption(s.String(), s.String())
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Task Name").
			Placeholder("Enter task name...").
			Validate(validateRequired("task name")).
			Value(name),

		huh.NewInput().
			Key("due").
			Title("Due Date (optional)").
			Placeholder(models.DateFormat).
			Validate(validateDueDate).
			Value(dueDate),

		huh.NewSelect[string]().
			Key("status").
			Title("Status").
			Options(options...).
			Value(status),

		huh.NewText().
			Key("notes").
			Title("Notes (optional, markdown)").
			Placeholder("Enter task notes...").
			CharLimit(5000).
			Lines(4).
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

// validateDueDate accepts blank or a YYYY-MM-DD date
func validateDueDate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := time.Parse(models.DateFormat, value); err != nil {
		return fmt.Errorf("due date must be %s", models.DateFormat)
	}
	return nil
}
