package tui

// Mode identifies which page or overlay currently owns the keyboard
type Mode int

const (
	// LoginMode is the password gate shown before any data page
	LoginMode Mode = iota
	// ConfigErrorMode is shown instead of the login page when no
	// password is configured
	ConfigErrorMode
	// DashboardMode is the projects table with the detail pane
	DashboardMode
	// ProjectFormMode is the create/edit project form overlay
	ProjectFormMode
	// ProjectDeleteConfirmMode asks before removing a project and its tasks
	ProjectDeleteConfirmMode
	// TaskMode is the task list for the opened project
	TaskMode
	// TaskFormMode is the add/edit task form overlay
	TaskFormMode
	// TaskDeleteConfirmMode asks before removing a task
	TaskDeleteConfirmMode
	// BackupMode is the snapshot list page
	BackupMode
	// BackupPullConfirmMode asks before replacing all data with a snapshot
	BackupPullConfirmMode
	// HelpMode is the key binding overlay
	HelpMode
)

// NotificationLevel represents the severity of a notification
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// Notification is a single toast message with a severity level
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState collects toasts to render on the next view. It lives
// behind a pointer on the Model so handlers can add to it without
// threading the slice through every update.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates an empty NotificationState
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add appends a notification with the given level and message
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns the current notifications in arrival order
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny reports whether any notification is pending
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
