package converters

import "github.com/thenoetrevino/rumbo/internal/models"

// TaskView is the shape of a task in CLI output. Tasks have no identifier of
// their own, so views carry the 1-based position listings address them by.
type TaskView struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	DueDate  string `json:"due_date,omitempty"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// TaskToView converts a models.Task at the given 0-based index to its CLI view
func TaskToView(index int, task models.Task) TaskView {
	return TaskView{
		Position: index + 1,
		Name:     task.Name,
		DueDate:  task.DueDate,
		Status:   task.Status.String(),
		Notes:    task.Notes,
	}
}

// TasksToViews converts a task slice to CLI views with 1-based positions
func TasksToViews(tasks []models.Task) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, task := range tasks {
		views[i] = TaskToView(i, task)
	}
	return views
}
