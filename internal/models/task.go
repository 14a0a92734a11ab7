package models

// Task represents a single unit of work within a project
// Tasks carry no identifier of their own; they are addressed by position
// in the project's task list
type Task struct {
	Name    string `json:"name"`
	DueDate string `json:"due_date,omitempty"`
	Status  Status `json:"status"`
	Notes   string `json:"notes"`
}
