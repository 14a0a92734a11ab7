package tui

import (
	"context"
	"fmt"
	"log"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// updateProjectDeleteConfirm waits for an explicit yes or no before a
// project and all of its tasks are removed
func (m Model) updateProjectDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		project := m.currentProject()
		if project != nil {
			err := m.app.ProjectService.DeleteProject(context.Background(), project.ID)
			if err != nil {
				log.Printf("Error deleting project: %v", err)
				m.notifications.Add(LevelError, "Could not delete project: "+err.Error())
			}
			m.reloadProjects()
		}
		m.mode = DashboardMode
		return m, nil

	case "n", "N", "esc":
		m.mode = DashboardMode
		return m, nil
	}

	return m, nil
}

func (m Model) viewProjectDeleteConfirm() string {
	project := m.currentProject()
	if project == nil {
		return m.viewDashboard()
	}

	var body string
	if len(project.Tasks) > 0 {
		body = fmt.Sprintf("Delete project %s: '%s'?\nThis will also delete %d task(s).\n\n[y]es  [n]o",
			project.ID, project.Name, len(project.Tasks))
	} else {
		body = fmt.Sprintf("Delete project %s: '%s'?\n\n[y]es  [n]o",
			project.ID, project.Name)
	}

	box := m.styles.DeleteBox.Width(50).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// updateTaskDeleteConfirm waits for an explicit yes or no before a task
// is removed from the open project
func (m Model) updateTaskDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if _, ok := m.currentTask(); ok {
			err := m.app.TaskService.DeleteTask(context.Background(), m.openProjectID, m.selectedTask)
			if err != nil {
				log.Printf("Error deleting task: %v", err)
				m.notifications.Add(LevelError, "Could not delete task: "+err.Error())
			}
			m.reloadTasks()
		}
		m.mode = TaskMode
		return m, nil

	case "n", "N", "esc":
		m.mode = TaskMode
		return m, nil
	}

	return m, nil
}

func (m Model) viewTaskDeleteConfirm() string {
	task, ok := m.currentTask()
	if !ok {
		return m.viewTaskPage()
	}

	body := fmt.Sprintf("Delete task %d: '%s'?\n\n[y]es  [n]o",
		m.selectedTask+1, task.Name)

	box := m.styles.DeleteBox.Width(50).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
