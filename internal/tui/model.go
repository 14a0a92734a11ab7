package tui

import (
	"context"
	"log"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/rumbo/internal/app"
	"github.com/thenoetrevino/rumbo/internal/backup"
	"github.com/thenoetrevino/rumbo/internal/events"
	"github.com/thenoetrevino/rumbo/internal/models"
)

// Model represents the application state for the TUI
type Model struct {
	app    *app.App
	styles Styles

	// Expected login password; empty means the environment is missing it
	password string

	mode       Mode
	returnMode Mode // restored when the help overlay closes
	width      int
	height     int

	// Login page
	passwordInput textinput.Model
	loginError    string

	// Dashboard
	projects    []*models.Project
	selectedRow int

	// Task page
	openProjectID string
	tasks         []models.Task
	selectedTask  int
	showNotes     bool

	// Form values live behind a pointer so huh field bindings stay valid
	// across Model copies
	forms *formState

	// Backup page
	snapshots        []backup.FileInfo
	selectedSnapshot int

	notifications *NotificationState

	eventCh <-chan events.Event
}

// formState holds the active huh form and the values its fields bind to
type formState struct {
	form *huh.Form

	projectName        string
	projectDescription string
	projectNotes       string
	projectConfirm     bool
	editingProjectID   string // empty while creating

	taskName         string
	taskDueDate      string
	taskStatus       string
	taskNotes        string
	taskConfirm      bool
	editingTaskIndex int // -1 while creating
}

// InitialModel creates the TUI model. The store behind application is
// expected to be loaded already; loadWarning carries a non-fatal load
// error to surface as a toast.
func InitialModel(application *app.App, password string, loadWarning string) Model {
	ti := textinput.New()
	ti.Placeholder = "Password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	m := Model{
		app:           application,
		styles:        NewStyles(application.Config.ColorScheme),
		password:      password,
		mode:          LoginMode,
		passwordInput: ti,
		forms:         &formState{editingTaskIndex: -1},
		notifications: NewNotificationState(),
	}

	// No password configured means nobody can log in; show the
	// configuration error page instead of the prompt
	if password == "" {
		m.mode = ConfigErrorMode
	}

	if loadWarning != "" {
		m.notifications.Add(LevelWarning, "Could not read saved data: "+loadWarning)
	}

	if publisher := application.Events(); publisher != nil {
		ch, err := publisher.Listen(context.Background())
		if err != nil {
			log.Printf("Error subscribing to store events: %v", err)
		} else {
			m.eventCh = ch
		}
	}

	m.reloadProjects()

	return m
}

// Init starts cursor blinking on the password field and arms the store
// event subscription.
// Required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.passwordInput.Focus(), waitForEvent(m.eventCh))
}

// reloadProjects refreshes the dashboard rows from the service layer
func (m *Model) reloadProjects() {
	projects, err := m.app.ProjectService.GetAllProjects(context.Background())
	if err != nil {
		log.Printf("Error loading projects: %v", err)
		return
	}
	m.projects = projects

	if m.selectedRow >= len(m.projects) {
		m.selectedRow = max(0, len(m.projects)-1)
	}
}

// reloadTasks refreshes the task page rows for the opened project
func (m *Model) reloadTasks() {
	if m.openProjectID == "" {
		m.tasks = nil
		return
	}

	tasks, err := m.app.TaskService.GetTasks(context.Background(), m.openProjectID)
	if err != nil {
		log.Printf("Error loading tasks for %s: %v", m.openProjectID, err)
		m.tasks = nil
		return
	}
	m.tasks = tasks

	if m.selectedTask >= len(m.tasks) {
		m.selectedTask = max(0, len(m.tasks)-1)
	}
}

// reloadSnapshots refreshes the backup page rows from the provider
func (m *Model) reloadSnapshots() {
	snapshots, err := m.app.BackupService.Snapshots(context.Background())
	if err != nil {
		log.Printf("Error listing snapshots: %v", err)
		m.notifications.Add(LevelError, "Could not list snapshots")
		m.snapshots = nil
		return
	}
	m.snapshots = snapshots

	if m.selectedSnapshot >= len(m.snapshots) {
		m.selectedSnapshot = max(0, len(m.snapshots)-1)
	}
}

// currentProject returns the project under the dashboard cursor, or nil
// when the table is empty
func (m Model) currentProject() *models.Project {
	if len(m.projects) == 0 || m.selectedRow >= len(m.projects) {
		return nil
	}
	return m.projects[m.selectedRow]
}

// openProject returns the project whose tasks are on the task page, or
// nil when it no longer exists
func (m Model) openProject() *models.Project {
	for _, project := range m.projects {
		if project.ID == m.openProjectID {
			return project
		}
	}
	return nil
}

// currentTask returns the task under the task page cursor
func (m Model) currentTask() (models.Task, bool) {
	if len(m.tasks) == 0 || m.selectedTask >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.selectedTask], true
}

// currentSnapshot returns the snapshot under the backup page cursor
func (m Model) currentSnapshot() (backup.FileInfo, bool) {
	if len(m.snapshots) == 0 || m.selectedSnapshot >= len(m.snapshots) {
		return backup.FileInfo{}, false
	}
	return m.snapshots[m.selectedSnapshot], true
}

// saveIfDirty writes the backing file when there are unsaved changes.
// Used on logout and quit so nothing is silently lost.
func (m *Model) saveIfDirty() {
	records := m.app.Records()
	if !records.HasUnsavedChanges() {
		return
	}
	if err := records.Save(context.Background()); err != nil {
		log.Printf("Error saving on exit: %v", err)
		m.notifications.Add(LevelError, "Save failed: "+err.Error())
	}
}

// resetSession clears everything a login session accumulated, returning
// the model to the state a fresh login expects
func (m *Model) resetSession() {
	m.selectedRow = 0
	m.openProjectID = ""
	m.tasks = nil
	m.selectedTask = 0
	m.showNotes = false
	m.snapshots = nil
	m.selectedSnapshot = 0
	m.forms.form = nil
	m.notifications.Clear()
	m.loginError = ""
	m.passwordInput.SetValue("")
}
