package tui

import (
	"context"
	"log"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/rumbo/internal/models"
	"github.com/thenoetrevino/rumbo/internal/services/task"
	"github.com/thenoetrevino/rumbo/internal/tui/huhforms"
)

func (m Model) openTaskCreateForm() (tea.Model, tea.Cmd) {
	m.forms.taskName = ""
	m.forms.taskDueDate = ""
	m.forms.taskStatus = models.DefaultStatus.String()
	m.forms.taskNotes = ""
	m.forms.taskConfirm = true
	m.forms.editingTaskIndex = -1
	m.forms.form = huhforms.TaskForm(
		&m.forms.taskName,
		&m.forms.taskDueDate,
		&m.forms.taskStatus,
		&m.forms.taskNotes,
		&m.forms.taskConfirm,
		"Add this task?",
	).WithTheme(huhforms.Theme(m.app.Config.ColorScheme))
	m.mode = TaskFormMode
	return m, m.forms.form.Init()
}

func (m Model) openTaskEditForm() (tea.Model, tea.Cmd) {
	selected, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	m.forms.taskName = selected.Name
	m.forms.taskDueDate = selected.DueDate
	m.forms.taskStatus = selected.Status.String()
	m.forms.taskNotes = selected.Notes
	m.forms.taskConfirm = true
	m.forms.editingTaskIndex = m.selectedTask
	m.forms.form = huhforms.TaskForm(
		&m.forms.taskName,
		&m.forms.taskDueDate,
		&m.forms.taskStatus,
		&m.forms.taskNotes,
		&m.forms.taskConfirm,
		"Save these changes?",
	).WithTheme(huhforms.Theme(m.app.Config.ColorScheme))
	m.mode = TaskFormMode
	return m, m.forms.form.Init()
}

// updateTaskForm forwards everything to the active form, intercepting
// only esc
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.forms.form == nil {
		m.mode = TaskMode
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.forms.form = nil
		m.mode = TaskMode
		return m, tea.ClearScreen
	}

	form, cmd := m.forms.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.forms.form = f
	}

	if m.forms.form.State == huh.StateCompleted {
		m.completeTaskForm()
		m.forms.form = nil
		m.mode = TaskMode
		return m, tea.ClearScreen
	}

	return m, cmd
}

// completeTaskForm applies the submitted values through the task service
func (m *Model) completeTaskForm() {
	if !m.forms.taskConfirm {
		m.notifications.Add(LevelInfo, "Discarded")
		return
	}

	ctx := context.Background()
	status := models.Status(m.forms.taskStatus)

	if m.forms.editingTaskIndex < 0 {
		err := m.app.TaskService.AddTask(ctx, task.AddTaskRequest{
			ProjectID: m.openProjectID,
			Name:      m.forms.taskName,
			DueDate:   m.forms.taskDueDate,
			Status:    status,
			Notes:     m.forms.taskNotes,
		})
		if err != nil {
			log.Printf("Error adding task: %v", err)
			m.notifications.Add(LevelError, "Could not add task: "+err.Error())
			return
		}
	} else {
		name := m.forms.taskName
		dueDate := m.forms.taskDueDate
		notes := m.forms.taskNotes
		err := m.app.TaskService.UpdateTask(ctx, task.UpdateTaskRequest{
			ProjectID: m.openProjectID,
			Index:     m.forms.editingTaskIndex,
			Name:      &name,
			DueDate:   &dueDate,
			Status:    &status,
			Notes:     &notes,
		})
		if err != nil {
			log.Printf("Error updating task: %v", err)
			m.notifications.Add(LevelError, "Could not update task: "+err.Error())
			return
		}
	}

	m.reloadTasks()
}
