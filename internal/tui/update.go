package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/rumbo/internal/events"
)

// Update handles all messages and updates the model accordingly.
// Required by the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m.handleStoreEvent(msg.event)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// The login field and the forms need every message, not just keys
	switch m.mode {
	case LoginMode:
		return m.updateLogin(msg)
	case ProjectFormMode:
		return m.updateProjectForm(msg)
	case TaskFormMode:
		return m.updateTaskForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

// handleKey dispatches key messages to the handler for the current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ConfigErrorMode:
		return m.updateConfigError(msg)
	case DashboardMode:
		return m.updateDashboard(msg)
	case ProjectDeleteConfirmMode:
		return m.updateProjectDeleteConfirm(msg)
	case TaskMode:
		return m.updateTaskPage(msg)
	case TaskDeleteConfirmMode:
		return m.updateTaskDeleteConfirm(msg)
	case BackupMode:
		return m.updateBackupPage(msg)
	case BackupPullConfirmMode:
		return m.updateBackupPullConfirm(msg)
	case HelpMode:
		return m.updateHelp(msg)
	}
	return m, nil
}

// handleStoreEvent refreshes visible data after a store event, surfaces
// failures, and re-arms the subscription
func (m Model) handleStoreEvent(event events.Event) (tea.Model, tea.Cmd) {
	switch event.Type {
	case events.EventStoreChanged:
		m.reloadProjects()
		if m.openProjectID != "" {
			m.reloadTasks()
		}
		if event.Message != "" && m.mode != LoginMode && m.mode != ConfigErrorMode {
			m.notifications.Add(LevelInfo, event.Message)
		}

	case events.EventSaveFailed:
		m.notifications.Add(LevelError, "Save failed: "+event.Message)

	case events.EventSaved:
		// The status bar reflects the new file time on the next render
	}

	return m, waitForEvent(m.eventCh)
}
