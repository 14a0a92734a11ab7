package models

// Status describes how far along a task is.
type Status string

// Task status values, in display order.
const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
)

// DefaultStatus is assigned to tasks created without an explicit status.
const DefaultStatus = StatusNotStarted

// Statuses returns every recognized status in display order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked}
}

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
