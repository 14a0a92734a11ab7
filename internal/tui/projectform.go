package tui

import (
	"context"
	"fmt"
	"log"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rumbo/internal/services/project"
	"github.com/thenoetrevino/rumbo/internal/tui/huhforms"
)

func (m Model) openProjectCreateForm() (tea.Model, tea.Cmd) {
	m.forms.projectName = ""
	m.forms.projectDescription = ""
	m.forms.projectNotes = ""
	m.forms.projectConfirm = true
	m.forms.editingProjectID = ""
	m.forms.form = huhforms.ProjectForm(
		&m.forms.projectName,
		&m.forms.projectDescription,
		&m.forms.projectNotes,
		&m.forms.projectConfirm,
		"Create this project?",
	).WithTheme(huhforms.Theme(m.app.Config.ColorScheme))
	m.mode = ProjectFormMode
	return m, m.forms.form.Init()
}

func (m Model) openProjectEditForm() (tea.Model, tea.Cmd) {
	selected := m.currentProject()
	if selected == nil {
		return m, nil
	}
	m.forms.projectName = selected.Name
	m.forms.projectDescription = selected.Description
	m.forms.projectNotes = selected.Notes
	m.forms.projectConfirm = true
	m.forms.editingProjectID = selected.ID
	m.forms.form = huhforms.ProjectForm(
		&m.forms.projectName,
		&m.forms.projectDescription,
		&m.forms.projectNotes,
		&m.forms.projectConfirm,
		"Save these changes?",
	).WithTheme(huhforms.Theme(m.app.Config.ColorScheme))
	m.mode = ProjectFormMode
	return m, m.forms.form.Init()
}

// updateProjectForm forwards everything to the active form so cursor
// blinks and paste events work, intercepting only esc
func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.forms.form == nil {
		m.mode = DashboardMode
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.forms.form = nil
		m.mode = DashboardMode
		return m, tea.ClearScreen
	}

	form, cmd := m.forms.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.forms.form = f
	}

	if m.forms.form.State == huh.StateCompleted {
		m.completeProjectForm()
		m.forms.form = nil
		m.mode = DashboardMode
		return m, tea.ClearScreen
	}

	return m, cmd
}

// completeProjectForm applies the submitted values through the project
// service; the confirmation toast arrives back through the event bus
func (m *Model) completeProjectForm() {
	if !m.forms.projectConfirm {
		m.notifications.Add(LevelInfo, "Discarded")
		return
	}

	ctx := context.Background()
	if m.forms.editingProjectID == "" {
		_, err := m.app.ProjectService.CreateProject(ctx, project.CreateProjectRequest{
			Name:        m.forms.projectName,
			Description: m.forms.projectDescription,
			Notes:       m.forms.projectNotes,
		})
		if err != nil {
			log.Printf("Error creating project: %v", err)
			m.notifications.Add(LevelError, "Could not create project: "+err.Error())
			return
		}
	} else {
		name := m.forms.projectName
		description := m.forms.projectDescription
		notes := m.forms.projectNotes
		err := m.app.ProjectService.UpdateProject(ctx, project.UpdateProjectRequest{
			ID:          m.forms.editingProjectID,
			Name:        &name,
			Description: &description,
			Notes:       &notes,
		})
		if err != nil {
			log.Printf("Error updating project: %v", err)
			m.notifications.Add(LevelError, "Could not update project: "+err.Error())
			return
		}
	}

	m.reloadProjects()
}

// viewFormBox renders the active form inside a bordered dialog, titled
// for whichever entity is being edited
func (m Model) viewFormBox() string {
	if m.forms.form == nil {
		return ""
	}

	var title string
	switch m.mode {
	case ProjectFormMode:
		if m.forms.editingProjectID == "" {
			title = "New Project"
		} else {
			title = "Edit Project " + m.forms.editingProjectID
		}
	case TaskFormMode:
		if m.forms.editingTaskIndex < 0 {
			title = "New Task"
		} else {
			title = fmt.Sprintf("Edit Task %d", m.forms.editingTaskIndex+1)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		"",
		m.forms.form.View(),
		"",
		m.styles.Subtle.Render("esc: cancel"),
	)

	width := min(70, max(50, m.width-10))
	return m.styles.FormBox.Width(width).Render(content)
}
